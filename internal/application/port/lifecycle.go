package port

import (
	"context"

	"github.com/bnema/dozer/internal/domain/entity"
)

// LifecycleRecorder receives lifecycle events for the activity log.
// Recording is best effort and must not block the caller for long.
type LifecycleRecorder interface {
	Record(ctx context.Context, event entity.LifecycleEvent)
}

// ProcessStats reports resource usage of the running process.
type ProcessStats interface {
	// ResidentMemoryBytes returns the peak resident set size.
	ResidentMemoryBytes() (uint64, error)
}
