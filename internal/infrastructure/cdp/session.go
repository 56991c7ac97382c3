package cdp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
)

// ErrSessionClosed is returned for requests on a closed session.
var ErrSessionClosed = errors.New("engine session closed")

const sessionQueueSize = 16

type job struct {
	op  string
	run func(tabCtx context.Context) error
}

// Session is one browser tab. Navigate and Reload are queued and run in
// order on the session's worker so callers never wait for a page load.
type Session struct {
	id       entity.TabID
	tabCtx   context.Context
	cancel   context.CancelFunc
	exec     Executor
	settings *Settings
	logCtx   context.Context

	jobs chan job
	done chan struct{}

	mu     sync.RWMutex
	closed bool

	// owned by the worker
	page pageSettings
}

var (
	_ port.EngineSession   = (*Session)(nil)
	_ port.TabCacheClearer = (*Session)(nil)
)

func newSession(logCtx context.Context, id entity.TabID, tabCtx context.Context, cancel context.CancelFunc, exec Executor, settings *Settings) *Session {
	s := &Session{
		id:       id,
		tabCtx:   tabCtx,
		cancel:   cancel,
		exec:     exec,
		settings: settings,
		logCtx:   logging.WithTabID(context.WithoutCancel(logCtx), string(id)),
		jobs:     make(chan job, sessionQueueSize),
		done:     make(chan struct{}),
	}
	go s.worker()
	return s
}

// ID returns the tab this session belongs to.
func (s *Session) ID() entity.TabID { return s.id }

// Navigate pushes the current settings and loads url.
func (s *Session) Navigate(ctx context.Context, target string) error {
	return s.enqueue(ctx, job{op: "navigate", run: func(tabCtx context.Context) error {
		return s.exec.Run(tabCtx, s.page.apply(s.settings.Snapshot()), chromedp.Navigate(target))
	}})
}

// Reload pushes the current settings and reloads the page.
func (s *Session) Reload(ctx context.Context) error {
	return s.enqueue(ctx, job{op: "reload", run: func(tabCtx context.Context) error {
		return s.exec.Run(tabCtx, s.page.apply(s.settings.Snapshot()), chromedp.Reload())
	}})
}

// CurrentURL asks the page for its location.
func (s *Session) CurrentURL(ctx context.Context) (string, error) {
	if s.isClosed() {
		return "", ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var loc string
	if err := s.exec.Run(s.tabCtx, chromedp.Location(&loc)); err != nil {
		return "", fmt.Errorf("read location: %w", err)
	}
	return loc, nil
}

// ClearCache drops the cache storage of the page's current origin.
func (s *Session) ClearCache(ctx context.Context) error {
	loc, err := s.CurrentURL(ctx)
	if err != nil {
		return err
	}
	origin, ok := originOf(loc)
	if !ok {
		return nil
	}
	if err := s.exec.Run(s.tabCtx, storage.ClearDataForOrigin(origin, "cache_storage")); err != nil {
		return fmt.Errorf("clear cache for %s: %w", origin, err)
	}
	return nil
}

// Close stops the worker after queued requests and closes the target.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	err := s.exec.Close(s.tabCtx)
	s.cancel()
	if err != nil {
		return fmt.Errorf("close target: %w", err)
	}
	return nil
}

func (s *Session) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Session) enqueue(ctx context.Context, j job) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSessionClosed
	}
	select {
	case s.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) worker() {
	defer close(s.done)
	log := logging.FromContext(s.logCtx)

	for j := range s.jobs {
		if err := j.run(s.tabCtx); err != nil {
			log.Warn().Err(err).Str("op", j.op).Msg("engine request failed")
			continue
		}
		log.Debug().Str("op", j.op).Msg("engine request done")
	}
}

func originOf(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}
