package usecase

import (
	"context"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
)

// CurrentProfiler reports the applied performance profile.
type CurrentProfiler interface {
	Current() string
}

// GetResourceStatsUseCase summarizes tab states and process memory.
type GetResourceStatsUseCase struct {
	registry *entity.TabRegistry
	profiles CurrentProfiler
	process  port.ProcessStats
	clock    port.Clock
}

// NewGetResourceStatsUseCase creates the stats use case. process may be nil.
func NewGetResourceStatsUseCase(
	registry *entity.TabRegistry,
	profiles CurrentProfiler,
	process port.ProcessStats,
	clock port.Clock,
) *GetResourceStatsUseCase {
	return &GetResourceStatsUseCase{
		registry: registry,
		profiles: profiles,
		process:  process,
		clock:    clock,
	}
}

// Execute returns a snapshot. A failed memory read yields RSSBytes == 0.
func (uc *GetResourceStatsUseCase) Execute(ctx context.Context) entity.ResourceStats {
	active, suspended := uc.registry.Counts()
	stats := entity.ResourceStats{
		Tabs:      uc.registry.Len(),
		Active:    active,
		Suspended: suspended,
		At:        uc.clock.Now(),
	}
	if uc.profiles != nil {
		stats.Profile = uc.profiles.Current()
	}
	if uc.process != nil {
		rss, err := uc.process.ResidentMemoryBytes()
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("resident memory unavailable")
		} else {
			stats.RSSBytes = rss
		}
	}
	return stats
}
