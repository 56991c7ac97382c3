package port

import (
	"context"

	"github.com/bnema/dozer/internal/domain/entity"
)

// TabStrip renders per-tab state in the UI.
// Implemented by the UI layer; the lifecycle core only writes icon and label.
type TabStrip interface {
	// SetIcon sets the tab icon. An empty icon clears it.
	SetIcon(ctx context.Context, id entity.TabID, icon string)

	// SetLabel replaces the text shown for the tab.
	SetLabel(ctx context.Context, id entity.TabID, text string)

	// Label returns the text currently shown for the tab.
	Label(id entity.TabID) string

	// Foreground returns the tab currently shown to the user, or "" when none.
	Foreground() entity.TabID
}
