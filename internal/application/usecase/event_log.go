package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/domain/repository"
	"github.com/bnema/dozer/internal/logging"
)

// EventLogUseCase reads and trims the persisted lifecycle activity log.
type EventLogUseCase struct {
	events repository.LifecycleEventRepository
	clock  port.Clock
}

// NewEventLogUseCase creates a new EventLogUseCase.
func NewEventLogUseCase(events repository.LifecycleEventRepository, clock port.Clock) *EventLogUseCase {
	if clock == nil {
		clock = port.SystemClock{}
	}
	return &EventLogUseCase{events: events, clock: clock}
}

// Recent returns at most limit events, newest first.
func (uc *EventLogUseCase) Recent(ctx context.Context, limit int) ([]*entity.LifecycleEvent, error) {
	events, err := uc.events.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifecycle events: %w", err)
	}
	return events, nil
}

// Prune deletes events older than retentionDays. Zero or less keeps everything.
func (uc *EventLogUseCase) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := uc.clock.Now().AddDate(0, 0, -retentionDays)
	removed, err := uc.events.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune lifecycle events: %w", err)
	}
	if removed > 0 {
		logging.FromContext(ctx).Info().
			Int64("removed", removed).
			Int("retention_days", retentionDays).
			Msg("pruned old lifecycle events")
	}
	return removed, nil
}
