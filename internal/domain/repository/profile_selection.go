package repository

import "context"

// ProfileSelectionRepository remembers which performance profile was last applied.
type ProfileSelectionRepository interface {
	// SaveSelected stores the applied profile name.
	SaveSelected(ctx context.Context, name string) error

	// GetSelected returns the stored profile name, or "" when none was saved.
	GetSelected(ctx context.Context) (string, error)
}
