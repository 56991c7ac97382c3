package cli

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/infrastructure/cdp"
	"github.com/bnema/dozer/internal/infrastructure/config"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeSession struct {
	mu       sync.Mutex
	visits   []string
	reloads  int
	location string
}

func (s *fakeSession) Navigate(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits = append(s.visits, url)
	s.location = url
	return nil
}

func (s *fakeSession) Reload(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloads++
	return nil
}

func (s *fakeSession) CurrentURL(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location, nil
}

func (s *fakeSession) Visits() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.visits...)
}

// fakeEngine keeps one fakeSession per open tab.
type fakeEngine struct {
	mu       sync.Mutex
	order    []entity.TabID
	sessions map[entity.TabID]*fakeSession
	clears   int
	closed   bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{sessions: make(map[entity.TabID]*fakeSession)}
}

func (e *fakeEngine) OpenTab(ctx context.Context, id entity.TabID, url string) error {
	s := &fakeSession{}
	e.mu.Lock()
	e.order = append(e.order, id)
	e.sessions[id] = s
	e.mu.Unlock()
	return s.Navigate(ctx, url)
}

func (e *fakeEngine) CloseTab(_ context.Context, id entity.TabID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, id)
	return nil
}

func (e *fakeEngine) Session(id entity.TabID) (port.EngineSession, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return nil, false
	}
	return s, true
}

func (e *fakeEngine) session(id entity.TabID) *fakeSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[id]
}

func (e *fakeEngine) ClearCache(context.Context) error        { e.count(); return nil }
func (e *fakeEngine) ClearVisitedLinks(context.Context) error { e.count(); return nil }
func (e *fakeEngine) ClearCookies(context.Context) error      { e.count(); return nil }

func (e *fakeEngine) count() {
	e.mu.Lock()
	e.clears++
	e.mu.Unlock()
}

func (e *fakeEngine) Close(context.Context) error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	return nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "dozer.db")
	cfg.Logging.Level = "debug"
	cfg.Performance.Profiles = map[string]config.ProfileConfig{
		"reader": {JavaScript: true},
	}

	app, err := newApp(nil, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestRuntime_Lifecycle(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	engine := newFakeEngine()
	settings := cdp.NewSettings()

	rt, err := newRuntime(ctx, app, engine, settings, clock)
	require.NoError(t, err)

	current, err := rt.Coordinator.CurrentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ProfileBalanced, current)

	require.NoError(t, rt.OpenTabs(ctx, []string{"https://a.example", "https://b.example"}))
	require.Len(t, engine.order, 2)
	a, b := engine.order[0], engine.order[1]
	assert.Equal(t, a, rt.TabBar.Foreground())

	clock.Advance(31 * time.Minute)
	suspended, err := rt.Coordinator.SuspendIdleNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{b}, suspended)
	assert.Equal(t, []string{"https://b.example", "about:blank"}, engine.session(b).Visits())
	assert.Equal(t, "[Suspended] https://b.example", rt.TabBar.Label(b))

	require.NoError(t, rt.Coordinator.SelectTab(ctx, b))
	assert.Equal(t, "https://b.example", engine.session(b).location)
	assert.Equal(t, "https://b.example", rt.TabBar.Label(b))

	require.NoError(t, rt.Coordinator.ApplyProfile(ctx, entity.ProfileMinimal))
	assert.False(t, settings.Flag(entity.CapabilityJavaScript))
	assert.Equal(t, 1, engine.session(a).reloads)
	assert.Equal(t, 1, engine.session(b).reloads)

	require.NoError(t, rt.Coordinator.ApplyProfile(ctx, "reader"))
	assert.True(t, settings.Flag(entity.CapabilityJavaScript))
	assert.False(t, settings.Flag(entity.CapabilityImages))

	result, err := rt.Coordinator.ReclaimAll(ctx)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 3, engine.clears)

	stats, err := rt.Coordinator.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Tabs)
	assert.Equal(t, "reader", stats.Profile)

	require.NoError(t, rt.Close(ctx))
	assert.True(t, engine.closed)

	_, err = rt.Coordinator.Tabs(ctx)
	assert.Error(t, err)

	events, err := app.EventLogUC.Recent(ctx, 50)
	require.NoError(t, err)
	kinds := make(map[entity.LifecycleEventKind]int)
	for _, ev := range events {
		kinds[ev.Kind]++
	}
	assert.Equal(t, 2, kinds[entity.EventTabOpened])
	assert.Equal(t, 1, kinds[entity.EventTabSuspended])
	assert.Equal(t, 1, kinds[entity.EventTabResumed])
	assert.Equal(t, 3, kinds[entity.EventProfileApplied])
	assert.Equal(t, 1, kinds[entity.EventReclaimed])

	selected, err := app.Selection.GetSelected(ctx)
	require.NoError(t, err)
	assert.Equal(t, "reader", selected)
}

func TestRuntime_TabChangesSignalsStripUpdates(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}

	rt, err := newRuntime(ctx, app, newFakeEngine(), cdp.NewSettings(), clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close(ctx) })

	changes := rt.TabChanges()
	require.NoError(t, rt.OpenTabs(ctx, []string{"https://a.example", "https://b.example"}))

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("no change signalled after opening tabs")
	}
}

func TestRuntime_RestoresPersistedProfile(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()
	require.NoError(t, app.Selection.SaveSelected(ctx, entity.ProfilePerformance))

	settings := cdp.NewSettings()
	rt, err := newRuntime(ctx, app, newFakeEngine(), settings, port.SystemClock{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close(ctx) })

	current, err := rt.Coordinator.CurrentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ProfilePerformance, current)
	assert.False(t, settings.Flag(entity.CapabilityWebGL))
	assert.True(t, settings.Flag(entity.CapabilityImages))
}

func TestRuntime_ApplyConfigReconfiguresScheduler(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()

	rt, err := newRuntime(ctx, app, newFakeEngine(), cdp.NewSettings(), port.SystemClock{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close(ctx) })

	require.NoError(t, rt.Start(ctx))
	assert.True(t, rt.Scheduler.Running())
	require.NoError(t, rt.Start(ctx))

	next := *app.Config
	next.Lifecycle.TickInterval = config.Duration(10 * time.Second)
	next.Lifecycle.IdleThreshold = config.Duration(5 * time.Minute)
	next.Lifecycle.ExemptPinned = true
	next.Performance.Profiles = map[string]config.ProfileConfig{
		"dark": {WebGL: true, JavaScript: true, Images: true},
	}
	rt.applyConfig(ctx, &next)

	sc := rt.Scheduler.Config()
	assert.Equal(t, 10*time.Second, sc.Interval)
	assert.Equal(t, 5*time.Minute, sc.IdleThreshold)
	assert.True(t, sc.ExemptPinned)

	// The profile registration is posted to the loop; the next Invoke runs after it.
	require.NoError(t, rt.Coordinator.ApplyProfile(ctx, "dark"))
	_, err = rt.Coordinator.OpenTab(ctx, usecase.OpenTabInput{URL: "https://c.example", Pinned: true})
	require.NoError(t, err)
}
