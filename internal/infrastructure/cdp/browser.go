package cdp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Options selects how the browser is reached.
type Options struct {
	// RemoteURL attaches to a running browser's DevTools endpoint instead of launching one.
	RemoteURL   string
	ExecPath    string
	UserDataDir string
	Headless    bool
}

// Browser owns the engine connection and one Session per open tab.
type Browser struct {
	exec     Executor
	settings *Settings
	logCtx   context.Context

	browserCtx context.Context
	cancels    []context.CancelFunc

	mu       sync.RWMutex
	sessions map[entity.TabID]*Session
}

var (
	_ port.SessionResolver  = (*Browser)(nil)
	_ port.ProfileResources = (*Browser)(nil)
	_ port.TabLauncher      = (*Browser)(nil)
)

// NewBrowser launches or attaches to a browser and waits until it answers.
func NewBrowser(ctx context.Context, opts Options) (*Browser, error) {
	log := logging.FromContext(ctx)

	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)
	base := context.WithoutCancel(ctx)
	if opts.RemoteURL != "" {
		log.Info().Str("url", opts.RemoteURL).Msg("connecting to browser")
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(base, opts.RemoteURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(base, execAllocatorOptions(opts)...)
	}

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	b := newBrowser(ctx, browserCtx, chromedpExecutor{}, NewSettings())
	b.cancels = []context.CancelFunc{browserCancel, allocCancel}
	log.Info().Bool("headless", opts.Headless).Msg("browser ready")
	return b, nil
}

func newBrowser(logCtx, browserCtx context.Context, exec Executor, settings *Settings) *Browser {
	return &Browser{
		exec:       exec,
		settings:   settings,
		logCtx:     logCtx,
		browserCtx: browserCtx,
		sessions:   make(map[entity.TabID]*Session),
	}
}

func execAllocatorOptions(opts Options) []chromedp.ExecAllocatorOption {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts,
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-background-timer-throttling", true),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	if opts.UserDataDir != "" {
		allocOpts = append(allocOpts, chromedp.UserDataDir(opts.UserDataDir))
	}
	return allocOpts
}

// Settings returns the browser-wide capability settings.
func (b *Browser) Settings() *Settings { return b.settings }

// OpenTab creates a target for id and starts loading url.
func (b *Browser) OpenTab(ctx context.Context, id entity.TabID, target string) error {
	b.mu.Lock()
	if _, exists := b.sessions[id]; exists {
		b.mu.Unlock()
		return fmt.Errorf("tab %s already has an engine session", id)
	}
	b.mu.Unlock()

	tabCtx, cancel := b.exec.NewTab(b.browserCtx)
	if err := b.exec.Run(tabCtx); err != nil {
		cancel()
		return fmt.Errorf("failed to create target for tab %s: %w", id, err)
	}

	s := newSession(b.logCtx, id, tabCtx, cancel, b.exec, b.settings)

	b.mu.Lock()
	b.sessions[id] = s
	b.mu.Unlock()

	return s.Navigate(ctx, target)
}

// CloseTab closes the target backing id.
func (b *Browser) CloseTab(ctx context.Context, id entity.TabID) error {
	b.mu.Lock()
	s, ok := b.sessions[id]
	delete(b.sessions, id)
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("close tab %s: %w", id, entity.ErrTabNotFound)
	}
	return s.Close(ctx)
}

// Session returns the session backing id.
func (b *Browser) Session(id entity.TabID) (port.EngineSession, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.sessions[id]
	if !ok {
		return nil, false
	}
	return s, true
}

// ClearCache clears the shared HTTP cache.
func (b *Browser) ClearCache(context.Context) error {
	if err := b.exec.Run(b.browserCtx, network.ClearBrowserCache()); err != nil {
		return fmt.Errorf("clear browser cache: %w", err)
	}
	return nil
}

// ClearCookies removes every cookie in the profile.
func (b *Browser) ClearCookies(context.Context) error {
	if err := b.exec.Run(b.browserCtx, network.ClearBrowserCookies()); err != nil {
		return fmt.Errorf("clear cookies: %w", err)
	}
	return nil
}

// ClearVisitedLinks resets the navigation history of every open tab.
func (b *Browser) ClearVisitedLinks(ctx context.Context) error {
	var errs []error
	for _, s := range b.snapshot() {
		if s.isClosed() {
			continue
		}
		if err := b.exec.Run(s.tabCtx, page.ResetNavigationHistory()); err != nil {
			errs = append(errs, fmt.Errorf("tab %s: %w", s.id, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("clear visited links: %w", err)
	}
	return nil
}

// Close closes every session and shuts the browser down.
func (b *Browser) Close(ctx context.Context) error {
	sessions := b.snapshot()
	b.mu.Lock()
	b.sessions = make(map[entity.TabID]*Session)
	b.mu.Unlock()

	var errs []error
	for _, s := range sessions {
		if err := s.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	for _, cancel := range b.cancels {
		cancel()
	}
	return errors.Join(errs...)
}

func (b *Browser) snapshot() []*Session {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Session, 0, len(b.sessions))
	for _, s := range b.sessions {
		out = append(out, s)
	}
	return out
}
