package scheduler_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/infrastructure/scheduler"
	"github.com/bnema/dozer/internal/logging"
	"github.com/bnema/dozer/internal/ui/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type recordingSuspender struct {
	mu      sync.Mutex
	inputs  []usecase.IdlePassInput
	calls   atomic.Int32
	block   chan struct{}
	running atomic.Int32
	overlap atomic.Bool
}

func (r *recordingSuspender) SuspendIdle(_ context.Context, input usecase.IdlePassInput) []entity.TabID {
	if r.running.Add(1) > 1 {
		r.overlap.Store(true)
	}
	defer r.running.Add(-1)

	r.calls.Add(1)
	r.mu.Lock()
	r.inputs = append(r.inputs, input)
	r.mu.Unlock()

	if r.block != nil {
		<-r.block
	}
	return []entity.TabID{"tab-1"}
}

func newHarness(t *testing.T) (*mainloop.Loop, *mainloop.Coalescer) {
	t.Helper()
	loop := mainloop.NewLoop(16)
	coalescer := mainloop.NewCoalescer(loop.Post)
	t.Cleanup(func() {
		coalescer.Destroy()
		loop.Stop()
	})
	return loop, coalescer
}

func TestService_StartStop(t *testing.T) {
	ctx := testContext()
	_, coalescer := newHarness(t)
	sus := &recordingSuspender{}

	svc := scheduler.NewService(scheduler.Config{Interval: 5 * time.Millisecond}, sus, coalescer)
	assert.False(t, svc.Running())

	require.NoError(t, svc.Start(ctx))
	assert.True(t, svc.Running())
	assert.ErrorIs(t, svc.Start(ctx), scheduler.ErrAlreadyRunning)

	require.Eventually(t, func() bool { return sus.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	svc.Stop()
	svc.Stop()
	assert.False(t, svc.Running())

	require.NoError(t, svc.Start(ctx))
	svc.Stop()
}

func TestService_Defaults(t *testing.T) {
	svc := scheduler.NewService(scheduler.Config{}, &recordingSuspender{}, nil)

	cfg := svc.Config()
	assert.Equal(t, 60*time.Second, cfg.Interval)
	assert.Equal(t, 1800*time.Second, cfg.IdleThreshold)
}

func TestService_RunPassUsesConfiguredThreshold(t *testing.T) {
	ctx := testContext()
	sus := &recordingSuspender{}
	svc := scheduler.NewService(scheduler.Config{
		Interval:      time.Minute,
		IdleThreshold: 10 * time.Minute,
		ExemptPinned:  true,
	}, sus, nil)

	assert.Equal(t, 1, svc.RunPass(ctx))

	svc.Reconfigure(scheduler.Config{Interval: time.Minute, IdleThreshold: 20 * time.Minute})
	assert.Equal(t, 1, svc.RunPass(ctx))

	require.Len(t, sus.inputs, 2)
	assert.Equal(t, usecase.IdlePassInput{IdleThreshold: 10 * time.Minute, ExemptPinned: true}, sus.inputs[0])
	assert.Equal(t, usecase.IdlePassInput{IdleThreshold: 20 * time.Minute}, sus.inputs[1])

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Zero(t, svc.RunPass(cancelled))
}

func TestService_SlowPassCoalescesTicks(t *testing.T) {
	ctx := testContext()
	_, coalescer := newHarness(t)
	sus := &recordingSuspender{block: make(chan struct{})}

	svc := scheduler.NewService(scheduler.Config{Interval: 2 * time.Millisecond}, sus, coalescer)
	require.NoError(t, svc.Start(ctx))

	require.Eventually(t, func() bool { return sus.calls.Load() == 1 }, time.Second, time.Millisecond)

	// Many ticks elapse while the first pass is blocked.
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), sus.calls.Load())

	svc.Stop()
	close(sus.block)

	assert.False(t, sus.overlap.Load())
}

func TestService_ReconfigureWhileRunning(t *testing.T) {
	ctx := testContext()
	_, coalescer := newHarness(t)
	sus := &recordingSuspender{}

	svc := scheduler.NewService(scheduler.Config{Interval: time.Hour}, sus, coalescer)
	require.NoError(t, svc.Start(ctx))
	defer svc.Stop()

	svc.Reconfigure(scheduler.Config{Interval: 5 * time.Millisecond, IdleThreshold: time.Minute})

	require.Eventually(t, func() bool { return sus.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
}
