// Package mainloop serializes lifecycle work onto a single owner goroutine.
package mainloop

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopStopped is returned when work is submitted to a stopped loop.
var ErrLoopStopped = errors.New("main loop stopped")

const defaultQueueSize = 64

// Loop runs posted functions one at a time, in arrival order, on its own
// goroutine. State owned by the loop needs no further locking.
type Loop struct {
	wake chan struct{}
	done chan struct{}

	mu      sync.Mutex
	queue   []func()
	stopped bool
	wg      sync.WaitGroup
}

// NewLoop starts a loop. queueSize is the initial queue capacity
// (0 selects a default); the queue grows as needed.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	l := &Loop{
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		queue: make([]func(), 0, queueSize),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer l.wg.Done()
	for {
		select {
		case <-l.wake:
			for fn := l.next(); fn != nil; fn = l.next() {
				fn()
			}
		case <-l.done:
			return
		}
	}
}

// next pops the oldest task, or returns nil when the queue is empty or the
// loop has stopped.
func (l *Loop) next() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped || len(l.queue) == 0 {
		return nil
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn
}

// Post queues fn without waiting. It never blocks, so tasks running on the
// loop may post follow-up work. It returns false when the loop is stopped.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Invoke runs fn on the loop and waits for it to return.
// Calling Invoke from inside a loop task deadlocks; use Post there.
func (l *Loop) Invoke(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLoopStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop terminates the loop after the task currently running, if any.
// Queued tasks that have not started are dropped.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	l.queue = nil
	close(l.done)
	l.mu.Unlock()
	l.wg.Wait()
}
