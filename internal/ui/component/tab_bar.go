package component

import (
	"context"
	"sync"

	"github.com/bnema/dozer/internal/domain/entity"
)

// TabBarEntry is what the bar shows for one tab.
type TabBarEntry struct {
	ID         entity.TabID
	Label      string
	Icon       string
	Foreground bool
}

// TabBar is the headless tab strip. It keeps the label and icon of each
// tab in display order and tracks which tab is in the foreground.
// Safe for concurrent use: the owner loop writes, renderers read.
type TabBar struct {
	mu         sync.RWMutex
	order      []entity.TabID
	labels     map[entity.TabID]string
	icons      map[entity.TabID]string
	foreground entity.TabID

	onChange func()
}

// NewTabBar creates an empty tab bar.
func NewTabBar() *TabBar {
	return &TabBar{
		labels: make(map[entity.TabID]string),
		icons:  make(map[entity.TabID]string),
	}
}

// SetOnChange registers a callback fired after every mutation.
func (tb *TabBar) SetOnChange(fn func()) {
	tb.mu.Lock()
	tb.onChange = fn
	tb.mu.Unlock()
}

// AddTab appends a tab. Adding a known tab only updates its label.
func (tb *TabBar) AddTab(id entity.TabID, label string) {
	tb.mu.Lock()
	if _, exists := tb.labels[id]; !exists {
		tb.order = append(tb.order, id)
	}
	tb.labels[id] = label
	tb.mu.Unlock()
	tb.changed()
}

// RemoveTab drops a tab. Removing the foreground tab leaves no foreground.
func (tb *TabBar) RemoveTab(id entity.TabID) {
	tb.mu.Lock()
	if _, exists := tb.labels[id]; !exists {
		tb.mu.Unlock()
		return
	}
	delete(tb.labels, id)
	delete(tb.icons, id)
	for i, tabID := range tb.order {
		if tabID == id {
			tb.order = append(tb.order[:i], tb.order[i+1:]...)
			break
		}
	}
	if tb.foreground == id {
		tb.foreground = ""
	}
	tb.mu.Unlock()
	tb.changed()
}

// SetForeground marks id as the tab shown to the user.
func (tb *TabBar) SetForeground(id entity.TabID) {
	tb.mu.Lock()
	tb.foreground = id
	tb.mu.Unlock()
	tb.changed()
}

// Foreground returns the tab shown to the user, or "" when none.
func (tb *TabBar) Foreground() entity.TabID {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	return tb.foreground
}

// SetIcon sets the tab icon. An empty icon clears it.
func (tb *TabBar) SetIcon(_ context.Context, id entity.TabID, icon string) {
	tb.mu.Lock()
	if _, exists := tb.labels[id]; !exists {
		tb.mu.Unlock()
		return
	}
	if icon == "" {
		delete(tb.icons, id)
	} else {
		tb.icons[id] = icon
	}
	tb.mu.Unlock()
	tb.changed()
}

// SetLabel replaces the text shown for the tab.
func (tb *TabBar) SetLabel(_ context.Context, id entity.TabID, text string) {
	tb.mu.Lock()
	if _, exists := tb.labels[id]; !exists {
		tb.mu.Unlock()
		return
	}
	tb.labels[id] = text
	tb.mu.Unlock()
	tb.changed()
}

// Label returns the text shown for the tab.
func (tb *TabBar) Label(id entity.TabID) string {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	return tb.labels[id]
}

// Icon returns the tab icon, "" when none.
func (tb *TabBar) Icon(id entity.TabID) string {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	return tb.icons[id]
}

// Entries returns the tabs in display order.
func (tb *TabBar) Entries() []TabBarEntry {
	tb.mu.RLock()
	defer tb.mu.RUnlock()

	entries := make([]TabBarEntry, 0, len(tb.order))
	for _, id := range tb.order {
		entries = append(entries, TabBarEntry{
			ID:         id,
			Label:      tb.labels[id],
			Icon:       tb.icons[id],
			Foreground: id == tb.foreground,
		})
	}
	return entries
}

func (tb *TabBar) changed() {
	tb.mu.RLock()
	fn := tb.onChange
	tb.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
