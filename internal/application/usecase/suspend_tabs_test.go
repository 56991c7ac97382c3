package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/dozer/internal/application/port"
	portmocks "github.com/bnema/dozer/internal/application/port/mocks"
	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var suspendCfg = usecase.SuspendTabsConfig{
	BlankURL:    entity.DefaultBlankURL,
	LabelPrefix: "[Suspended] ",
	Icon:        "images/suspended.png",
}

func TestSuspendTabsUseCase_Suspend_TransitionsAndUpdatesStrip(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(2000))
	reg := newRegistry()
	id := reg.Register(entity.NewTab("https://example.com/a", "Example", at(0)))

	strip := portmocks.NewMockTabStrip(t)
	session := portmocks.NewMockEngineSession(t)
	recorder := portmocks.NewMockLifecycleRecorder(t)

	strip.EXPECT().Foreground().Return(entity.TabID("other"))
	strip.EXPECT().SetIcon(mock.Anything, id, "images/suspended.png").Return().Once()
	strip.EXPECT().Label(id).Return("Example")
	strip.EXPECT().SetLabel(mock.Anything, id, "[Suspended] Example").Return().Once()
	session.EXPECT().CurrentURL(mock.Anything).Return("https://example.com/a", nil).Once()
	session.EXPECT().Navigate(mock.Anything, entity.DefaultBlankURL).Return(nil).Once()
	recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(ev entity.LifecycleEvent) bool {
		return ev.Kind == entity.EventTabSuspended && ev.TabID == id && ev.OK &&
			ev.URL == "https://example.com/a" && ev.CreatedAt.Equal(at(2000))
	})).Return().Once()

	uc := usecase.NewSuspendTabsUseCase(reg, strip, sessionMap{id: session}, clock, recorder, suspendCfg)

	require.True(t, uc.Suspend(ctx, id))

	tab, err := reg.Get(id)
	require.NoError(t, err)
	assert.True(t, tab.IsSuspended())
	assert.Equal(t, "https://example.com/a", tab.SuspendedURL)
	assert.Equal(t, entity.DefaultBlankURL, tab.URL)
	assert.NoError(t, tab.Validate(entity.DefaultBlankURL))
}

func TestSuspendTabsUseCase_Suspend_KeepsLiveLocation(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(2000))
	reg := newRegistry()
	id := reg.Register(entity.NewTab("https://example.com/start", "Start", at(0)))

	strip := newStripState()
	strip.labels[id] = "Start"
	session := portmocks.NewMockEngineSession(t)
	session.EXPECT().CurrentURL(mock.Anything).Return("https://example.com/after-click", nil).Once()
	session.EXPECT().Navigate(mock.Anything, entity.DefaultBlankURL).Return(nil).Once()
	session.EXPECT().Navigate(mock.Anything, "https://example.com/after-click").Return(nil).Once()
	recorder := portmocks.NewMockLifecycleRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(ev entity.LifecycleEvent) bool {
		return ev.Kind == entity.EventTabSuspended && ev.URL == "https://example.com/after-click"
	})).Return().Once()
	recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(ev entity.LifecycleEvent) bool {
		return ev.Kind == entity.EventTabResumed
	})).Return().Once()

	uc := usecase.NewSuspendTabsUseCase(reg, strip, sessionMap{id: session}, clock, recorder, suspendCfg)

	require.True(t, uc.Suspend(ctx, id))
	tab, err := reg.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/after-click", tab.SuspendedURL)

	resumed, err := uc.Resume(ctx, id)
	require.NoError(t, err)
	require.True(t, resumed)
	assert.Equal(t, "https://example.com/after-click", tab.URL)
}

func TestSuspendTabsUseCase_Suspend_BlankLocationKeepsStoredURL(t *testing.T) {
	ctx := testContext()
	reg := newRegistry()
	id := reg.Register(entity.NewTab("https://example.com/start", "Start", at(0)))

	session := portmocks.NewMockEngineSession(t)
	session.EXPECT().CurrentURL(mock.Anything).Return(entity.DefaultBlankURL, nil).Once()
	session.EXPECT().Navigate(mock.Anything, entity.DefaultBlankURL).Return(nil).Once()

	uc := usecase.NewSuspendTabsUseCase(reg, newStripState(), sessionMap{id: session}, newFakeClock(at(2000)), nil, suspendCfg)

	require.True(t, uc.Suspend(ctx, id))
	tab, err := reg.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/start", tab.SuspendedURL)
}

func TestSuspendTabsUseCase_Suspend_IsIdempotent(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(2000))
	reg := newRegistry()
	id := reg.Register(entity.NewTab("https://example.com/a", "A", at(0)))

	strip := newStripState()
	strip.labels[id] = "A"
	session := portmocks.NewMockEngineSession(t)
	session.EXPECT().CurrentURL(mock.Anything).Return("https://example.com/a", nil).Once()
	session.EXPECT().Navigate(mock.Anything, entity.DefaultBlankURL).Return(nil).Once()

	uc := usecase.NewSuspendTabsUseCase(reg, strip, sessionMap{id: session}, clock, nil, suspendCfg)

	require.True(t, uc.Suspend(ctx, id))
	first, err := reg.Get(id)
	require.NoError(t, err)
	snapshot := first.Snapshot()

	assert.False(t, uc.Suspend(ctx, id))

	second, err := reg.Get(id)
	require.NoError(t, err)
	assert.Equal(t, snapshot, second.Snapshot())
	assert.Equal(t, "[Suspended] A", strip.labels[id])
}

func TestSuspendTabsUseCase_Suspend_SilentNoOps(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(5000))

	t.Run("foreground tab", func(t *testing.T) {
		reg := newRegistry()
		id := reg.Register(entity.NewTab("https://fg", "", at(0)))
		strip := portmocks.NewMockTabStrip(t)
		strip.EXPECT().Foreground().Return(id)

		uc := usecase.NewSuspendTabsUseCase(reg, strip, sessionMap{}, clock, nil, suspendCfg)

		assert.False(t, uc.Suspend(ctx, id))
		tab, err := reg.Get(id)
		require.NoError(t, err)
		assert.False(t, tab.IsSuspended())
	})

	t.Run("closed tab", func(t *testing.T) {
		reg := newRegistry()
		strip := portmocks.NewMockTabStrip(t)

		uc := usecase.NewSuspendTabsUseCase(reg, strip, sessionMap{}, clock, nil, suspendCfg)

		assert.False(t, uc.Suspend(ctx, "gone"))
	})
}

func TestSuspendTabsUseCase_NavigationFailureKeepsState(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(2000))
	reg := newRegistry()
	id := reg.Register(entity.NewTab("https://example.com", "E", at(0)))

	strip := newStripState()
	session := portmocks.NewMockEngineSession(t)
	session.EXPECT().CurrentURL(mock.Anything).Return("", errors.New("target crashed")).Once()
	session.EXPECT().Navigate(mock.Anything, mock.Anything).Return(errors.New("target crashed"))
	recorder := portmocks.NewMockLifecycleRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(ev entity.LifecycleEvent) bool {
		return !ev.OK && ev.Detail == "target crashed"
	})).Return().Twice()

	uc := usecase.NewSuspendTabsUseCase(reg, strip, sessionMap{id: session}, clock, recorder, suspendCfg)

	require.True(t, uc.Suspend(ctx, id))
	tab, err := reg.Get(id)
	require.NoError(t, err)
	assert.True(t, tab.IsSuspended())

	resumed, err := uc.Resume(ctx, id)
	require.NoError(t, err)
	assert.True(t, resumed)
	assert.False(t, tab.IsSuspended())
	assert.Equal(t, "https://example.com", tab.URL)
}

func TestSuspendTabsUseCase_Resume_RoundTrip(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(2000))
	reg := newRegistry()
	id := reg.Register(entity.NewTab("https://example.com/page?q=1#frag", "Page", at(0)))

	strip := newStripState()
	strip.labels[id] = "Page"
	session := portmocks.NewMockEngineSession(t)
	session.EXPECT().CurrentURL(mock.Anything).Return("https://example.com/page?q=1#frag", nil).Once()
	session.EXPECT().Navigate(mock.Anything, entity.DefaultBlankURL).Return(nil).Once()
	session.EXPECT().Navigate(mock.Anything, "https://example.com/page?q=1#frag").Return(nil).Once()

	uc := usecase.NewSuspendTabsUseCase(reg, strip, sessionMap{id: session}, clock, nil, suspendCfg)

	require.True(t, uc.Suspend(ctx, id))
	assert.Equal(t, "images/suspended.png", strip.icons[id])

	clock.Set(at(2500))
	resumed, err := uc.Resume(ctx, id)
	require.NoError(t, err)
	require.True(t, resumed)

	tab, err := reg.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/page?q=1#frag", tab.URL)
	assert.Empty(t, tab.SuspendedURL)
	assert.Equal(t, at(2500), tab.LastActiveAt)
	assert.Equal(t, "Page", strip.labels[id])
	assert.Empty(t, strip.icons[id])
	assert.NoError(t, tab.Validate(entity.DefaultBlankURL))

	again, err := uc.Resume(ctx, id)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestSuspendTabsUseCase_Resume_UnknownTab(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSuspendTabsUseCase(newRegistry(), newStripState(), sessionMap{}, newFakeClock(at(0)), nil, suspendCfg)

	resumed, err := uc.Resume(ctx, "missing")
	assert.False(t, resumed)
	assert.ErrorIs(t, err, entity.ErrTabNotFound)
	assert.ErrorIs(t, uc.Touch(ctx, "missing"), entity.ErrTabNotFound)
}

func TestSuspendTabsUseCase_ShouldSuspend(t *testing.T) {
	uc := usecase.NewSuspendTabsUseCase(newRegistry(), newStripState(), sessionMap{}, newFakeClock(at(0)), nil, suspendCfg)
	threshold := 1800 * time.Second

	tab := entity.NewTab("https://a", "", at(0))
	assert.False(t, uc.ShouldSuspend(tab, at(1799), threshold))
	assert.True(t, uc.ShouldSuspend(tab, at(1800), threshold))

	tab.State = entity.TabStateSuspended
	assert.False(t, uc.ShouldSuspend(tab, at(9999), threshold))
	assert.False(t, uc.ShouldSuspend(nil, at(9999), threshold))
}

func TestSuspendTabsUseCase_SuspendIdle_FirstEligibleTick(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(0))
	reg := newRegistry()
	id := reg.Register(entity.NewTab("https://idle", "", at(0)))

	uc := usecase.NewSuspendTabsUseCase(reg, newStripState(), sessionMap{}, clock, nil, suspendCfg)
	input := usecase.IdlePassInput{IdleThreshold: 1800 * time.Second}

	var suspendedAt time.Time
	for tick := 60; tick <= 1860; tick += 60 {
		clock.Set(at(tick))
		if got := uc.SuspendIdle(ctx, input); len(got) > 0 {
			assert.Equal(t, []entity.TabID{id}, got)
			suspendedAt = at(tick)
			break
		}
	}

	assert.Equal(t, at(1800), suspendedAt)
}

// Three tabs: A foreground, B and C idle since t=0.
func TestSuspendTabsUseCase_ForegroundSelectionScenario(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock(at(0))
	reg := newRegistry()
	strip := newStripState()

	a := reg.Register(entity.NewTab("https://a", "A", at(0)))
	b := reg.Register(entity.NewTab("https://b", "B", at(0)))
	c := reg.Register(entity.NewTab("https://c", "C", at(0)))
	strip.foreground = a

	var sessions port.SessionResolver = sessionMap{}
	suspend := usecase.NewSuspendTabsUseCase(reg, strip, sessions, clock, nil, suspendCfg)
	tabs := usecase.NewManageTabsUseCase(reg, nil, suspend, nil, clock, sequentialIDs("x"))
	input := usecase.IdlePassInput{IdleThreshold: 1800 * time.Second}

	clock.Set(at(1850))
	assert.ElementsMatch(t, []entity.TabID{b, c}, suspend.SuspendIdle(ctx, input))

	state := func(id entity.TabID) entity.TabState {
		tab, err := reg.Get(id)
		require.NoError(t, err)
		return tab.State
	}
	assert.Equal(t, entity.TabStateActive, state(a))
	assert.Equal(t, entity.TabStateSuspended, state(b))
	assert.Equal(t, entity.TabStateSuspended, state(c))

	clock.Set(at(1900))
	strip.foreground = b
	require.NoError(t, tabs.Select(ctx, b))

	tabB, err := reg.Get(b)
	require.NoError(t, err)
	assert.Equal(t, entity.TabStateActive, tabB.State)
	assert.Equal(t, at(1900), tabB.LastActiveAt)

	// A is no longer foreground and has been idle since t=0.
	clock.Set(at(1920))
	strip.foreground = ""
	got := suspend.SuspendIdle(ctx, input)
	assert.NotContains(t, got, b)
	assert.Equal(t, entity.TabStateActive, state(b))

	for _, id := range reg.IDs() {
		tab, err := reg.Get(id)
		require.NoError(t, err)
		assert.NoError(t, tab.Validate(entity.DefaultBlankURL))
	}
}
