// Package eventlog persists lifecycle events off the caller's goroutine.
package eventlog

import (
	"context"
	"sync"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/domain/repository"
	"github.com/bnema/dozer/internal/logging"
)

// DefaultBufferSize is the number of events that may wait for the writer.
const DefaultBufferSize = 128

// Recorder implements port.LifecycleRecorder. Record never blocks: events are
// queued for a background writer and dropped when the queue is full.
type Recorder struct {
	repo   repository.LifecycleEventRepository
	queue  chan entity.LifecycleEvent
	done   chan struct{}
	mu     sync.RWMutex
	closed bool

	closeOnce sync.Once
}

var _ port.LifecycleRecorder = (*Recorder)(nil)

// NewRecorder starts the background writer. ctx carries the logger used by
// the writer and is passed to the repository; cancelling it does not stop
// the writer, Close does.
func NewRecorder(ctx context.Context, repo repository.LifecycleEventRepository, bufferSize int) *Recorder {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	r := &Recorder{
		repo:  repo,
		queue: make(chan entity.LifecycleEvent, bufferSize),
		done:  make(chan struct{}),
	}
	go r.writer(context.WithoutCancel(ctx))
	return r
}

// Record queues event for persistence.
func (r *Recorder) Record(ctx context.Context, event entity.LifecycleEvent) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}

	select {
	case r.queue <- event:
	default:
		logging.FromContext(ctx).Warn().
			Str("kind", string(event.Kind)).
			Msg("lifecycle event queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are written.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.queue)
		r.mu.Unlock()
	})
	<-r.done
}

func (r *Recorder) writer(ctx context.Context) {
	defer close(r.done)
	log := logging.FromContext(ctx)

	for event := range r.queue {
		ev := event
		if err := r.repo.Append(ctx, &ev); err != nil {
			log.Warn().Err(err).
				Str("kind", string(ev.Kind)).
				Str("tab_id", string(ev.TabID)).
				Msg("failed to persist lifecycle event")
		}
	}
}
