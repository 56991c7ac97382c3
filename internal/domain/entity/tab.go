package entity

import (
	"fmt"
	"time"
)

// DefaultBlankURL is the placeholder location a suspended tab points at.
const DefaultBlankURL = "about:blank"

// TabID uniquely identifies a tab for its whole lifetime.
type TabID string

// TabState is the lifecycle state of a tab.
type TabState int

const (
	// TabStateActive means the page is rendered and consuming memory.
	TabStateActive TabState = iota
	// TabStateSuspended means the page was released and a placeholder is shown.
	TabStateSuspended
)

// String returns the state name.
func (s TabState) String() string {
	switch s {
	case TabStateActive:
		return "active"
	case TabStateSuspended:
		return "suspended"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Tab is the lifecycle record of one browsing session.
// It is owned by TabRegistry and never attached to a UI widget.
type Tab struct {
	ID           TabID
	URL          string // Location currently loaded (blank while suspended)
	SuspendedURL string // Location to restore on resume, set only while suspended
	State        TabState
	LastActiveAt time.Time // Last time the tab became the foreground tab
	Label        string    // Display text without any state prefix
	Pinned       bool
	CreatedAt    time.Time
}

// NewTab creates an active tab pointing at url.
func NewTab(url, label string, now time.Time) *Tab {
	return &Tab{
		URL:          url,
		Label:        label,
		State:        TabStateActive,
		LastActiveAt: now,
		CreatedAt:    now,
	}
}

// IsSuspended reports whether the tab is in the suspended state.
func (t *Tab) IsSuspended() bool {
	return t.State == TabStateSuspended
}

// IdleFor returns how long the tab has been in the background at now.
func (t *Tab) IdleFor(now time.Time) time.Duration {
	return now.Sub(t.LastActiveAt)
}

// Validate checks that the suspended flag, SuspendedURL and URL agree.
// A tab is suspended iff SuspendedURL is set and URL equals blankURL.
func (t *Tab) Validate(blankURL string) error {
	suspendedShape := t.SuspendedURL != "" && t.URL == blankURL
	if t.IsSuspended() != suspendedShape {
		return fmt.Errorf("tab %s: state %s inconsistent with url=%q suspended_url=%q",
			t.ID, t.State, t.URL, t.SuspendedURL)
	}
	return nil
}

// Snapshot returns a copy safe to hand outside the owning loop.
func (t *Tab) Snapshot() Tab {
	return *t
}
