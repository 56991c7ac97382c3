package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/infrastructure/cdp"
	"github.com/bnema/dozer/internal/infrastructure/config"
	"github.com/bnema/dozer/internal/infrastructure/eventlog"
	"github.com/bnema/dozer/internal/infrastructure/procstats"
	"github.com/bnema/dozer/internal/infrastructure/scheduler"
	"github.com/bnema/dozer/internal/logging"
	"github.com/bnema/dozer/internal/ui/component"
	"github.com/bnema/dozer/internal/ui/coordinator"
	"github.com/bnema/dozer/internal/ui/mainloop"
)

// Engine is the browser the runtime drives.
type Engine interface {
	port.TabLauncher
	port.SessionResolver
	port.ProfileResources
	Close(ctx context.Context) error
}

// Runtime is a running tab lifecycle: engine, owner loop, scheduler and the
// coordinator front ends talk to.
type Runtime struct {
	Coordinator *coordinator.LifecycleCoordinator
	TabBar      *component.TabBar
	Scheduler   *scheduler.Service

	engine    Engine
	loop      *mainloop.Loop
	coalescer *mainloop.Coalescer
	recorder  *eventlog.Recorder
	profiles  *usecase.PerformanceProfileUseCase
	eventLog  *usecase.EventLogUseCase
	cfg       *config.Config
}

// StartRuntime launches the browser engine and assembles a runtime around it.
// The scheduler is not started; call Runtime.Start.
func (a *App) StartRuntime(ctx context.Context) (*Runtime, error) {
	ec := a.Config.Engine
	browser, err := cdp.NewBrowser(ctx, cdp.Options{
		RemoteURL:   ec.RemoteURL,
		ExecPath:    ec.ExecPath,
		UserDataDir: ec.UserDataDir,
		Headless:    ec.Headless,
	})
	if err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}

	rt, err := newRuntime(ctx, a, browser, browser.Settings(), port.SystemClock{})
	if err != nil {
		_ = browser.Close(ctx)
		return nil, err
	}
	return rt, nil
}

func newRuntime(
	ctx context.Context,
	app *App,
	engine Engine,
	settings port.EngineSettings,
	clock port.Clock,
) (*Runtime, error) {
	cfg := app.Config
	log := logging.FromContext(ctx)

	registry := entity.NewTabRegistry(func() entity.TabID { return entity.TabID(uuid.NewString()) })
	tabBar := component.NewTabBar()
	recorder := eventlog.NewRecorder(ctx, app.Events, eventlog.DefaultBufferSize)

	suspend := usecase.NewSuspendTabsUseCase(registry, tabBar, engine, clock, recorder, usecase.SuspendTabsConfig{
		BlankURL:    cfg.Lifecycle.BlankURL,
		LabelPrefix: cfg.Lifecycle.SuspendedLabelPrefix,
		Icon:        cfg.Lifecycle.SuspendedIcon,
	})
	tabs := usecase.NewManageTabsUseCase(registry, engine, suspend, recorder, clock, uuid.NewString)
	profiles := usecase.NewPerformanceProfileUseCase(registry, settings, engine, app.Selection, recorder, clock)
	if err := registerProfiles(profiles, &cfg.Performance); err != nil {
		recorder.Close()
		return nil, err
	}
	reclaim := usecase.NewReclaimResourcesUseCase(registry, engine, engine, recorder, clock, cfg.Engine.ReclaimWorkers)
	stats := usecase.NewGetResourceStatsUseCase(registry, profiles, procstats.New(), clock)

	loop := mainloop.NewLoop(0)
	coalescer := mainloop.NewCoalescer(loop.Post)
	sched := scheduler.NewService(schedulerConfig(cfg.Lifecycle), suspend, coalescer)

	coord := coordinator.NewLifecycleCoordinator(ctx, coordinator.LifecycleCoordinatorConfig{
		Loop:      loop,
		TabBar:    tabBar,
		TabsUC:    tabs,
		SuspendUC: suspend,
		ProfileUC: profiles,
		ReclaimUC: reclaim,
		StatsUC:   stats,
		IdlePass: func() usecase.IdlePassInput {
			sc := sched.Config()
			return usecase.IdlePassInput{IdleThreshold: sc.IdleThreshold, ExemptPinned: sc.ExemptPinned}
		},
	})

	rt := &Runtime{
		Coordinator: coord,
		TabBar:      tabBar,
		Scheduler:   sched,
		engine:      engine,
		loop:        loop,
		coalescer:   coalescer,
		recorder:    recorder,
		profiles:    profiles,
		eventLog:    usecase.NewEventLogUseCase(app.Events, clock),
		cfg:         cfg,
	}

	var restoreErr error
	if err := loop.Invoke(ctx, func() {
		restoreErr = profiles.Restore(ctx, cfg.Performance.Profile)
	}); err != nil {
		restoreErr = err
	}
	if restoreErr != nil {
		rt.stopLoop()
		recorder.Close()
		return nil, fmt.Errorf("restore performance profile: %w", restoreErr)
	}

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(next *config.Config) { rt.applyConfig(ctx, next) })
		if err := app.Manager.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	return rt, nil
}

// TabChanges returns a channel signalled after the tab strip changes.
// Signals coalesce: a reader that falls behind sees one pending change.
func (r *Runtime) TabChanges() <-chan struct{} {
	ch := make(chan struct{}, 1)
	r.TabBar.SetOnChange(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	return ch
}

func schedulerConfig(lc config.LifecycleConfig) scheduler.Config {
	return scheduler.Config{
		Interval:      lc.TickInterval.Std(),
		IdleThreshold: lc.IdleThreshold.Std(),
		ExemptPinned:  lc.ExemptPinned,
	}
}

func registerProfiles(profiles *usecase.PerformanceProfileUseCase, pc *config.PerformanceConfig) error {
	declared, err := pc.PerformanceProfiles()
	if err != nil {
		return fmt.Errorf("declared profiles: %w", err)
	}
	for _, p := range declared {
		profiles.Register(p)
	}
	return nil
}

// applyConfig picks up a reloaded configuration. Suspension thresholds apply
// from the next pass; profile declarations are registered on the loop.
// The applied profile is left alone.
func (r *Runtime) applyConfig(ctx context.Context, next *config.Config) {
	log := logging.FromContext(ctx)

	r.Scheduler.Reconfigure(schedulerConfig(next.Lifecycle))

	perf := next.Performance
	if !r.loop.Post(func() {
		if err := registerProfiles(r.profiles, &perf); err != nil {
			log.Warn().Err(err).Msg("reloaded profiles rejected")
		}
	}) {
		return
	}
	log.Info().
		Dur("interval", next.Lifecycle.TickInterval.Std()).
		Dur("idle_threshold", next.Lifecycle.IdleThreshold.Std()).
		Msg("configuration reloaded")
}

// Start prunes expired events and starts the suspend scheduler.
func (r *Runtime) Start(ctx context.Context) error {
	if _, err := r.eventLog.Prune(ctx, r.cfg.Events.RetentionDays); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("event prune failed")
	}
	if err := r.Scheduler.Start(ctx); err != nil && !errors.Is(err, scheduler.ErrAlreadyRunning) {
		return err
	}
	return nil
}

// OpenTabs opens one tab per URL, in order.
func (r *Runtime) OpenTabs(ctx context.Context, urls []string) error {
	for _, u := range urls {
		if _, err := r.Coordinator.OpenTab(ctx, usecase.OpenTabInput{URL: u}); err != nil {
			return fmt.Errorf("open %s: %w", u, err)
		}
	}
	return nil
}

// Close stops the scheduler and the loop, then closes the engine and flushes
// the event log.
func (r *Runtime) Close(ctx context.Context) error {
	r.stopLoop()
	err := r.engine.Close(ctx)
	r.recorder.Close()
	return err
}

func (r *Runtime) stopLoop() {
	r.Scheduler.Stop()
	r.coalescer.Destroy()
	r.loop.Stop()
}
