package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TabRegistry maps tab handles to their lifecycle records.
// It is not safe for concurrent use: a single owner (the main loop)
// performs every read and write.
type TabRegistry struct {
	tabs  map[TabID]*Tab
	newID func() TabID
}

// NewTabRegistry creates an empty registry. idGen assigns handles to
// registered tabs that do not carry one.
func NewTabRegistry(idGen func() TabID) *TabRegistry {
	if idGen == nil {
		panic("entity.NewTabRegistry: id generator cannot be nil")
	}
	return &TabRegistry{
		tabs:  make(map[TabID]*Tab),
		newID: idGen,
	}
}

// Register adds a tab and returns its handle.
// Tabs always enter the registry active; a tab without a location points at
// DefaultBlankURL. Registering a handle twice is a bookkeeping bug and panics.
func (r *TabRegistry) Register(tab *Tab) TabID {
	if tab.ID == "" {
		tab.ID = r.newID()
	}
	if _, exists := r.tabs[tab.ID]; exists {
		panic(fmt.Sprintf("entity.TabRegistry: tab %s already registered", tab.ID))
	}
	if strings.TrimSpace(tab.URL) == "" {
		tab.URL = DefaultBlankURL
	}
	if tab.CreatedAt.IsZero() {
		tab.CreatedAt = time.Now()
	}
	if tab.LastActiveAt.IsZero() {
		tab.LastActiveAt = tab.CreatedAt
	}
	tab.State = TabStateActive
	tab.SuspendedURL = ""
	r.tabs[tab.ID] = tab
	return tab.ID
}

// Unregister removes a tab. Unknown handles are an error, never a no-op.
func (r *TabRegistry) Unregister(id TabID) error {
	if _, ok := r.tabs[id]; !ok {
		return fmt.Errorf("unregister %s: %w", id, ErrTabNotFound)
	}
	delete(r.tabs, id)
	return nil
}

// Get returns the tab record for id.
func (r *TabRegistry) Get(id TabID) (*Tab, error) {
	tab, ok := r.tabs[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, ErrTabNotFound)
	}
	return tab, nil
}

// Has reports whether id is registered.
func (r *TabRegistry) Has(id TabID) bool {
	_, ok := r.tabs[id]
	return ok
}

// EligibilityQuery parameterizes EligibleForSuspension.
type EligibilityQuery struct {
	Exclude       TabID // Foreground tab, never eligible
	Now           time.Time
	IdleThreshold time.Duration
	ExemptPinned  bool
}

// EligibleForSuspension returns every non-excluded active tab that has been
// idle for at least the threshold. Order is unspecified.
func (r *TabRegistry) EligibleForSuspension(q EligibilityQuery) []TabID {
	var ids []TabID
	for id, tab := range r.tabs {
		if id == q.Exclude || tab.IsSuspended() {
			continue
		}
		if q.ExemptPinned && tab.Pinned {
			continue
		}
		if tab.IdleFor(q.Now) >= q.IdleThreshold {
			ids = append(ids, id)
		}
	}
	return ids
}

// IDs returns all handles sorted by creation time, then id.
func (r *TabRegistry) IDs() []TabID {
	ids := make([]TabID, 0, len(r.tabs))
	for id := range r.tabs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := r.tabs[ids[i]], r.tabs[ids[j]]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return ids
}

// Len returns the number of registered tabs.
func (r *TabRegistry) Len() int {
	return len(r.tabs)
}

// Counts returns how many tabs are active and suspended.
func (r *TabRegistry) Counts() (active, suspended int) {
	for _, tab := range r.tabs {
		if tab.IsSuspended() {
			suspended++
		} else {
			active++
		}
	}
	return active, suspended
}
