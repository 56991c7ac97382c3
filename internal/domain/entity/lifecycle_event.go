package entity

import "time"

// LifecycleEventKind names what happened to a tab or the engine.
type LifecycleEventKind string

const (
	EventTabOpened      LifecycleEventKind = "tab_opened"
	EventTabClosed      LifecycleEventKind = "tab_closed"
	EventTabSuspended   LifecycleEventKind = "tab_suspended"
	EventTabResumed     LifecycleEventKind = "tab_resumed"
	EventProfileApplied LifecycleEventKind = "profile_applied"
	EventCapabilitySet  LifecycleEventKind = "capability_set"
	EventReclaimed      LifecycleEventKind = "resources_reclaimed"
)

// LifecycleEvent is one entry of the persisted activity log.
type LifecycleEvent struct {
	ID        int64
	Kind      LifecycleEventKind
	TabID     TabID
	URL       string
	Profile   string
	OK        bool
	Detail    string
	CreatedAt time.Time
}

// ResourceStats is a point-in-time view of tab and process resource usage.
type ResourceStats struct {
	Tabs      int
	Active    int
	Suspended int
	Profile   string
	RSSBytes  uint64 // 0 when unavailable
	At        time.Time
}
