// Package coordinator exposes the tab lifecycle to front ends. Every call is
// executed on the main loop that owns the tab registry.
package coordinator

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
	"github.com/bnema/dozer/internal/ui/component"
	"github.com/bnema/dozer/internal/ui/mainloop"
)

// LifecycleCoordinator is the thread-safe entry point used by the CLI and TUI.
type LifecycleCoordinator struct {
	loop     *mainloop.Loop
	tabBar   *component.TabBar
	tabsUC   *usecase.ManageTabsUseCase
	suspend  *usecase.SuspendTabsUseCase
	profiles *usecase.PerformanceProfileUseCase
	reclaim  *usecase.ReclaimResourcesUseCase
	stats    *usecase.GetResourceStatsUseCase
	idlePass func() usecase.IdlePassInput
}

// LifecycleCoordinatorConfig holds the collaborators of LifecycleCoordinator.
type LifecycleCoordinatorConfig struct {
	Loop      *mainloop.Loop
	TabBar    *component.TabBar
	TabsUC    *usecase.ManageTabsUseCase
	SuspendUC *usecase.SuspendTabsUseCase
	ProfileUC *usecase.PerformanceProfileUseCase
	ReclaimUC *usecase.ReclaimResourcesUseCase
	StatsUC   *usecase.GetResourceStatsUseCase
	// IdlePass returns the thresholds of a manual suspend pass, normally
	// the scheduler's current configuration.
	IdlePass func() usecase.IdlePassInput
}

// NewLifecycleCoordinator creates a new LifecycleCoordinator.
func NewLifecycleCoordinator(ctx context.Context, cfg LifecycleCoordinatorConfig) *LifecycleCoordinator {
	logging.FromContext(ctx).Debug().Msg("creating lifecycle coordinator")

	return &LifecycleCoordinator{
		loop:     cfg.Loop,
		tabBar:   cfg.TabBar,
		tabsUC:   cfg.TabsUC,
		suspend:  cfg.SuspendUC,
		profiles: cfg.ProfileUC,
		reclaim:  cfg.ReclaimUC,
		stats:    cfg.StatsUC,
		idlePass: cfg.IdlePass,
	}
}

// ApplyProfile applies a named performance profile and reloads every tab.
func (c *LifecycleCoordinator) ApplyProfile(ctx context.Context, name string) error {
	var err error
	if invokeErr := c.loop.Invoke(ctx, func() {
		err = c.profiles.Apply(ctx, name)
	}); invokeErr != nil {
		return invokeErr
	}
	return err
}

// CycleProfile applies the profile after the current one in name order.
func (c *LifecycleCoordinator) CycleProfile(ctx context.Context) (string, error) {
	var (
		next string
		err  error
	)
	if invokeErr := c.loop.Invoke(ctx, func() {
		next = nextProfile(c.profiles.Profiles(), c.profiles.Current())
		if next == "" {
			err = fmt.Errorf("no profile registered: %w", entity.ErrUnknownProfile)
			return
		}
		err = c.profiles.Apply(ctx, next)
	}); invokeErr != nil {
		return "", invokeErr
	}
	return next, err
}

func nextProfile(profiles []entity.PerformanceProfile, current string) string {
	if len(profiles) == 0 {
		return ""
	}
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name())
	}
	sort.Strings(names)
	i := sort.SearchStrings(names, current)
	if i < len(names) && names[i] == current {
		i++
	}
	return names[i%len(names)]
}

// SetCapability flips one engine capability and reloads every tab.
func (c *LifecycleCoordinator) SetCapability(ctx context.Context, capability entity.Capability, enabled bool) error {
	var err error
	if invokeErr := c.loop.Invoke(ctx, func() {
		err = c.profiles.SetCapability(ctx, capability, enabled)
	}); invokeErr != nil {
		return invokeErr
	}
	return err
}

// CurrentProfile returns the name of the applied profile.
func (c *LifecycleCoordinator) CurrentProfile(ctx context.Context) (string, error) {
	var name string
	err := c.loop.Invoke(ctx, func() { name = c.profiles.Current() })
	return name, err
}

// ReclaimAll clears engine caches and storage for the profile and every tab.
func (c *LifecycleCoordinator) ReclaimAll(ctx context.Context) (usecase.ReclaimResult, error) {
	var result usecase.ReclaimResult
	err := c.loop.Invoke(ctx, func() { result = c.reclaim.ReclaimAll(ctx) })
	return result, err
}

// Stats returns a snapshot of tab counts and process memory.
func (c *LifecycleCoordinator) Stats(ctx context.Context) (entity.ResourceStats, error) {
	var stats entity.ResourceStats
	err := c.loop.Invoke(ctx, func() { stats = c.stats.Execute(ctx) })
	return stats, err
}

// SuspendIdleNow runs a suspend pass immediately with the current thresholds.
func (c *LifecycleCoordinator) SuspendIdleNow(ctx context.Context) ([]entity.TabID, error) {
	input := usecase.IdlePassInput{}
	if c.idlePass != nil {
		input = c.idlePass()
	}
	var suspended []entity.TabID
	err := c.loop.Invoke(ctx, func() { suspended = c.suspend.SuspendIdle(ctx, input) })
	return suspended, err
}
