package port

import (
	"context"

	"github.com/bnema/dozer/internal/domain/entity"
)

// EngineSession is the browser engine's view of one tab.
// Navigate and Reload are requests; completion is not awaited by callers.
type EngineSession interface {
	Navigate(ctx context.Context, url string) error
	Reload(ctx context.Context) error
	CurrentURL(ctx context.Context) (string, error)
}

// TabCacheClearer is implemented by sessions whose engine exposes a per-tab cache.
type TabCacheClearer interface {
	ClearCache(ctx context.Context) error
}

// SessionResolver looks up the engine session backing a tab.
type SessionResolver interface {
	Session(id entity.TabID) (EngineSession, bool)
}

// EngineSettings is the engine's shared, live configuration object.
// Writes are in-memory; they reach pages on their next load.
type EngineSettings interface {
	SetFlag(name entity.Capability, enabled bool)
	Flag(name entity.Capability) bool
}

// ProfileResources exposes the engine profile's storage clearing primitives.
type ProfileResources interface {
	ClearCache(ctx context.Context) error
	ClearVisitedLinks(ctx context.Context) error
	ClearCookies(ctx context.Context) error
}

// TabLauncher creates and destroys engine sessions for registered tabs.
type TabLauncher interface {
	OpenTab(ctx context.Context, id entity.TabID, url string) error
	CloseTab(ctx context.Context, id entity.TabID) error
}
