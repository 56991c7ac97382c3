package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase handles tab lifecycle operations driven by the UI.
type ManageTabsUseCase struct {
	registry    *entity.TabRegistry
	launcher    port.TabLauncher
	suspend     *SuspendTabsUseCase
	recorder    port.LifecycleRecorder
	clock       port.Clock
	idGenerator IDGenerator
}

// NewManageTabsUseCase creates a new tab management use case.
// launcher and recorder may be nil.
func NewManageTabsUseCase(
	registry *entity.TabRegistry,
	launcher port.TabLauncher,
	suspend *SuspendTabsUseCase,
	recorder port.LifecycleRecorder,
	clock port.Clock,
	idGenerator IDGenerator,
) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		registry:    registry,
		launcher:    launcher,
		suspend:     suspend,
		recorder:    recorder,
		clock:       clock,
		idGenerator: idGenerator,
	}
}

// OpenTabInput contains parameters for opening a tab.
type OpenTabInput struct {
	URL    string // URL to load (default: blank page)
	Label  string // Optional label, defaults to the URL
	Pinned bool
}

// Open registers a new active tab and asks the engine to load it.
// The registration is rolled back when the engine refuses the tab.
func (uc *ManageTabsUseCase) Open(ctx context.Context, input OpenTabInput) (entity.TabID, error) {
	log := logging.FromContext(ctx)

	url := strings.TrimSpace(input.URL)
	if url == "" {
		url = uc.suspend.BlankURL()
	}
	label := input.Label
	if label == "" {
		label = url
	}

	log.Debug().
		Str("url", url).
		Bool("is_pinned", input.Pinned).
		Msg("opening tab")

	tab := entity.NewTab(url, label, uc.clock.Now())
	tab.ID = entity.TabID(uc.idGenerator())
	tab.Pinned = input.Pinned
	id := uc.registry.Register(tab)

	if uc.launcher != nil {
		if err := uc.launcher.OpenTab(ctx, id, url); err != nil {
			_ = uc.registry.Unregister(id)
			return "", fmt.Errorf("open tab %s: %w", id, err)
		}
	}

	log.Info().
		Str("tab_id", string(id)).
		Int("tabs", uc.registry.Len()).
		Msg("tab opened")

	record(ctx, uc.recorder, uc.clock, entity.LifecycleEvent{
		Kind:  entity.EventTabOpened,
		TabID: id,
		URL:   url,
		OK:    true,
	}, nil)

	return id, nil
}

// Close unregisters a tab and releases its engine session.
// Unknown handles fail with entity.ErrTabNotFound.
func (uc *ManageTabsUseCase) Close(ctx context.Context, id entity.TabID) error {
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	tab, err := uc.registry.Get(id)
	if err != nil {
		return err
	}
	url := tab.URL
	if tab.IsSuspended() {
		url = tab.SuspendedURL
	}
	if err := uc.registry.Unregister(id); err != nil {
		return err
	}

	var closeErr error
	if uc.launcher != nil {
		if closeErr = uc.launcher.CloseTab(ctx, id); closeErr != nil {
			log.Warn().Err(closeErr).Msg("engine failed to close tab")
		}
	}

	log.Info().Int("remaining", uc.registry.Len()).Msg("tab closed")

	record(ctx, uc.recorder, uc.clock, entity.LifecycleEvent{
		Kind:  entity.EventTabClosed,
		TabID: id,
		URL:   url,
		OK:    closeErr == nil,
	}, closeErr)

	return nil
}

// Select handles a tab becoming the foreground tab: it is resumed when
// suspended and its activity timestamp is refreshed either way.
func (uc *ManageTabsUseCase) Select(ctx context.Context, id entity.TabID) error {
	resumed, err := uc.suspend.Resume(ctx, id)
	if err != nil {
		return err
	}
	if resumed {
		return nil
	}
	return uc.suspend.Touch(ctx, id)
}

// Pin marks or unmarks a tab as pinned.
func (uc *ManageTabsUseCase) Pin(ctx context.Context, id entity.TabID, pinned bool) error {
	tab, err := uc.registry.Get(id)
	if err != nil {
		return err
	}
	tab.Pinned = pinned
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Bool("is_pinned", pinned).
		Msg("tab pin changed")
	return nil
}

// TabView is a read-only copy of a tab for display.
type TabView struct {
	ID           entity.TabID
	URL          string // Location the user sees, the restore URL when suspended
	Label        string
	State        entity.TabState
	Pinned       bool
	LastActiveAt time.Time
	Idle         time.Duration
}

// View returns the display copy of one tab.
func (uc *ManageTabsUseCase) View(id entity.TabID) (TabView, error) {
	tab, err := uc.registry.Get(id)
	if err != nil {
		return TabView{}, err
	}
	return viewOf(tab, uc.clock.Now()), nil
}

// List returns every tab in creation order.
func (uc *ManageTabsUseCase) List() []TabView {
	now := uc.clock.Now()
	ids := uc.registry.IDs()
	views := make([]TabView, 0, len(ids))
	for _, id := range ids {
		tab, err := uc.registry.Get(id)
		if err != nil {
			continue
		}
		views = append(views, viewOf(tab, now))
	}
	return views
}

func viewOf(tab *entity.Tab, now time.Time) TabView {
	url := tab.URL
	if tab.IsSuspended() {
		url = tab.SuspendedURL
	}
	return TabView{
		ID:           tab.ID,
		URL:          url,
		Label:        tab.Label,
		State:        tab.State,
		Pinned:       tab.Pinned,
		LastActiveAt: tab.LastActiveAt,
		Idle:         tab.IdleFor(now),
	}
}
