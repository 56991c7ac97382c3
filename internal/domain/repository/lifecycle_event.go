package repository

import (
	"context"
	"time"

	"github.com/bnema/dozer/internal/domain/entity"
)

// LifecycleEventRepository persists the tab lifecycle activity log.
type LifecycleEventRepository interface {
	// Append stores an event and returns it with its assigned ID.
	Append(ctx context.Context, event *entity.LifecycleEvent) error

	// Recent returns the newest events first, at most limit entries.
	Recent(ctx context.Context, limit int) ([]*entity.LifecycleEvent, error)

	// PruneBefore deletes events older than cutoff and returns how many were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
