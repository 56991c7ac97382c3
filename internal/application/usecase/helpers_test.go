package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// at returns epoch plus the given number of seconds.
func at(seconds int) time.Time {
	return epoch.Add(time.Duration(seconds) * time.Second)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newRegistry() *entity.TabRegistry {
	next := sequentialIDs("tab")
	return entity.NewTabRegistry(func() entity.TabID { return entity.TabID(next()) })
}

// stripState is a minimal tab strip for scenario tests.
type stripState struct {
	foreground entity.TabID
	labels     map[entity.TabID]string
	icons      map[entity.TabID]string
}

func newStripState() *stripState {
	return &stripState{
		labels: make(map[entity.TabID]string),
		icons:  make(map[entity.TabID]string),
	}
}

func (s *stripState) SetIcon(_ context.Context, id entity.TabID, icon string) { s.icons[id] = icon }
func (s *stripState) SetLabel(_ context.Context, id entity.TabID, text string) {
	s.labels[id] = text
}
func (s *stripState) Label(id entity.TabID) string { return s.labels[id] }
func (s *stripState) Foreground() entity.TabID     { return s.foreground }

// sessionMap resolves sessions from a fixed map.
type sessionMap map[entity.TabID]port.EngineSession

func (m sessionMap) Session(id entity.TabID) (port.EngineSession, bool) {
	s, ok := m[id]
	return s, ok
}
