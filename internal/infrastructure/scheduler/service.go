package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
)

// ErrAlreadyRunning is returned by Start on a running service.
var ErrAlreadyRunning = errors.New("scheduler already running")

// Defaults for the periodic suspend pass.
const (
	DefaultInterval      = 60 * time.Second
	DefaultIdleThreshold = 30 * time.Minute

	passKey = "suspend-pass"
)

// Config holds the scheduler timing.
type Config struct {
	Interval      time.Duration
	IdleThreshold time.Duration
	ExemptPinned  bool
}

// Suspender runs one suspend pass over the registry.
type Suspender interface {
	SuspendIdle(ctx context.Context, input usecase.IdlePassInput) []entity.TabID
}

// PassPoster schedules keyed work on the registry owner, dropping the post
// while the same key is still in flight.
type PassPoster interface {
	Post(key string, fn func()) bool
}

// Service periodically suspends idle tabs.
// Ticks only post a pass to the owner loop; a tick that arrives while the
// previous pass is pending or running is dropped.
type Service struct {
	suspender Suspender
	poster    PassPoster

	mu     sync.Mutex
	cfg    Config
	cancel context.CancelFunc
	done   chan struct{}
	reset  chan time.Duration
}

// NewService creates a stopped scheduler.
func NewService(cfg Config, suspender Suspender, poster PassPoster) *Service {
	return &Service{
		suspender: suspender,
		poster:    poster,
		cfg:       normalize(cfg),
		reset:     make(chan time.Duration, 1),
	}
}

func normalize(cfg Config) Config {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = DefaultIdleThreshold
	}
	return cfg
}

// Start begins ticking until ctx is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyRunning
	}

	select {
	case <-s.reset:
	default:
	}

	runCtx, cancel := context.WithCancel(logging.WithComponent(ctx, "scheduler"))
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, s.cfg.Interval, s.done)

	logging.FromContext(ctx).Info().
		Dur("interval", s.cfg.Interval).
		Dur("idle_threshold", s.cfg.IdleThreshold).
		Msg("scheduler started")
	return nil
}

// Stop halts ticking and waits for the ticker goroutine to exit.
// A pass already running on the owner loop is not interrupted.
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the ticker is active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Config returns the current timing.
func (s *Service) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Reconfigure changes the timing. A running ticker picks up the new interval
// immediately; the threshold applies from the next pass.
func (s *Service) Reconfigure(cfg Config) {
	s.mu.Lock()
	s.cfg = normalize(cfg)
	interval := s.cfg.Interval
	running := s.cancel != nil
	s.mu.Unlock()

	if !running {
		return
	}
	select {
	case <-s.reset:
	default:
	}
	s.reset <- interval
}

// RunPass suspends eligible tabs and returns how many transitioned.
// It must run on the registry owner.
func (s *Service) RunPass(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}
	cfg := s.Config()
	suspended := s.suspender.SuspendIdle(ctx, usecase.IdlePassInput{
		IdleThreshold: cfg.IdleThreshold,
		ExemptPinned:  cfg.ExemptPinned,
	})
	if len(suspended) > 0 {
		logging.FromContext(ctx).Info().Int("suspended", len(suspended)).Msg("suspend pass complete")
	}
	return len(suspended)
}

func (s *Service) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("scheduler stopped")
			return
		case d := <-s.reset:
			ticker.Reset(d)
			log.Debug().Dur("interval", d).Msg("scheduler interval changed")
		case <-ticker.C:
			if !s.poster.Post(passKey, func() { s.RunPass(ctx) }) {
				log.Debug().Msg("suspend pass still in flight, tick dropped")
			}
		}
	}
}
