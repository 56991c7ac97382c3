package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
)

// SuspendTabsConfig holds the user-visible suspension settings.
type SuspendTabsConfig struct {
	BlankURL    string // Placeholder loaded into suspended tabs
	LabelPrefix string // Prepended to the tab label while suspended
	Icon        string // Tab icon while suspended, empty for none
}

// SuspendTabsUseCase implements the per-tab suspend/resume state machine.
// All methods must be called from the registry owner.
type SuspendTabsUseCase struct {
	registry *entity.TabRegistry
	strip    port.TabStrip
	sessions port.SessionResolver
	clock    port.Clock
	recorder port.LifecycleRecorder
	cfg      SuspendTabsConfig
}

// NewSuspendTabsUseCase creates the suspension policy. recorder may be nil.
func NewSuspendTabsUseCase(
	registry *entity.TabRegistry,
	strip port.TabStrip,
	sessions port.SessionResolver,
	clock port.Clock,
	recorder port.LifecycleRecorder,
	cfg SuspendTabsConfig,
) *SuspendTabsUseCase {
	if cfg.BlankURL == "" {
		cfg.BlankURL = entity.DefaultBlankURL
	}
	return &SuspendTabsUseCase{
		registry: registry,
		strip:    strip,
		sessions: sessions,
		clock:    clock,
		recorder: recorder,
		cfg:      cfg,
	}
}

// BlankURL returns the placeholder location of suspended tabs.
func (uc *SuspendTabsUseCase) BlankURL() string {
	return uc.cfg.BlankURL
}

// ShouldSuspend reports whether an active tab has been idle long enough.
func (uc *SuspendTabsUseCase) ShouldSuspend(tab *entity.Tab, now time.Time, threshold time.Duration) bool {
	if tab == nil || tab.IsSuspended() {
		return false
	}
	return tab.IdleFor(now) >= threshold
}

// IdlePassInput parameterizes a scheduler pass.
type IdlePassInput struct {
	IdleThreshold time.Duration
	ExemptPinned  bool
}

// SuspendIdle suspends every eligible tab except the foreground one and
// returns the handles that transitioned.
func (uc *SuspendTabsUseCase) SuspendIdle(ctx context.Context, input IdlePassInput) []entity.TabID {
	log := logging.FromContext(ctx)

	now := uc.clock.Now()
	eligible := uc.registry.EligibleForSuspension(entity.EligibilityQuery{
		Exclude:       uc.strip.Foreground(),
		Now:           now,
		IdleThreshold: input.IdleThreshold,
		ExemptPinned:  input.ExemptPinned,
	})

	log.Debug().
		Int("eligible", len(eligible)).
		Dur("idle_threshold", input.IdleThreshold).
		Msg("suspend pass")

	suspended := make([]entity.TabID, 0, len(eligible))
	for _, id := range eligible {
		if uc.Suspend(ctx, id) {
			suspended = append(suspended, id)
		}
	}
	return suspended
}

// Suspend releases a tab's rendering and shows the placeholder.
// Already suspended, closed and foreground tabs are left alone; the return
// value reports whether a transition happened.
func (uc *SuspendTabsUseCase) Suspend(ctx context.Context, id entity.TabID) bool {
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	tab, err := uc.registry.Get(id)
	if err != nil {
		log.Debug().Msg("suspend skipped: tab closed")
		return false
	}
	if tab.IsSuspended() {
		return false
	}
	if uc.strip.Foreground() == id {
		log.Debug().Msg("suspend skipped: tab in foreground")
		return false
	}

	uc.syncLocation(ctx, tab)
	restoreURL := tab.URL
	tab.SuspendedURL = restoreURL
	tab.URL = uc.cfg.BlankURL
	tab.State = entity.TabStateSuspended

	uc.strip.SetIcon(ctx, id, uc.cfg.Icon)
	if label := uc.strip.Label(id); !strings.HasPrefix(label, uc.cfg.LabelPrefix) {
		uc.strip.SetLabel(ctx, id, uc.cfg.LabelPrefix+label)
	}

	navErr := uc.navigate(ctx, id, uc.cfg.BlankURL)

	log.Info().
		Str("suspended_url", restoreURL).
		Dur("idle", tab.IdleFor(uc.clock.Now())).
		Msg("tab suspended")

	uc.record(ctx, entity.LifecycleEvent{
		Kind:  entity.EventTabSuspended,
		TabID: id,
		URL:   restoreURL,
		OK:    navErr == nil,
	}, navErr)

	return true
}

// Resume restores a suspended tab. Unknown handles are an error; active
// tabs are left alone.
func (uc *SuspendTabsUseCase) Resume(ctx context.Context, id entity.TabID) (bool, error) {
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	tab, err := uc.registry.Get(id)
	if err != nil {
		return false, err
	}
	if !tab.IsSuspended() {
		return false, nil
	}

	restoreURL := tab.SuspendedURL
	tab.URL = restoreURL
	tab.SuspendedURL = ""
	tab.State = entity.TabStateActive
	tab.LastActiveAt = uc.clock.Now()

	uc.strip.SetIcon(ctx, id, "")
	if label := uc.strip.Label(id); uc.cfg.LabelPrefix != "" && strings.HasPrefix(label, uc.cfg.LabelPrefix) {
		uc.strip.SetLabel(ctx, id, strings.TrimPrefix(label, uc.cfg.LabelPrefix))
	}

	navErr := uc.navigate(ctx, id, restoreURL)

	log.Info().Str("url", restoreURL).Msg("tab resumed")

	uc.record(ctx, entity.LifecycleEvent{
		Kind:  entity.EventTabResumed,
		TabID: id,
		URL:   restoreURL,
		OK:    navErr == nil,
	}, navErr)

	return true, nil
}

// Touch marks a tab as just used.
func (uc *SuspendTabsUseCase) Touch(ctx context.Context, id entity.TabID) error {
	tab, err := uc.registry.Get(id)
	if err != nil {
		return err
	}
	tab.LastActiveAt = uc.clock.Now()
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Time("last_active_at", tab.LastActiveAt).
		Msg("tab touched")
	return nil
}

// navigate requests a load without altering tab state on failure.
// syncLocation refreshes tab.URL from the engine. Redirects and in-page
// navigation move the page away from where it was opened. A failed or blank
// answer keeps the stored location.
func (uc *SuspendTabsUseCase) syncLocation(ctx context.Context, tab *entity.Tab) {
	sess, ok := uc.sessions.Session(tab.ID)
	if !ok {
		return
	}
	loc, err := sess.CurrentURL(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("url", tab.URL).Msg("engine location unavailable, keeping stored url")
		return
	}
	if loc = strings.TrimSpace(loc); loc == "" || loc == uc.cfg.BlankURL {
		return
	}
	tab.URL = loc
}

func (uc *SuspendTabsUseCase) navigate(ctx context.Context, id entity.TabID, url string) error {
	sess, ok := uc.sessions.Session(id)
	if !ok {
		return nil
	}
	if err := sess.Navigate(ctx, url); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("url", url).Msg("engine navigation failed")
		return err
	}
	return nil
}

func (uc *SuspendTabsUseCase) record(ctx context.Context, ev entity.LifecycleEvent, err error) {
	record(ctx, uc.recorder, uc.clock, ev, err)
}

// record stamps and forwards an event when a recorder is configured.
func record(ctx context.Context, rec port.LifecycleRecorder, clock port.Clock, ev entity.LifecycleEvent, err error) {
	if rec == nil {
		return
	}
	if err != nil && ev.Detail == "" {
		ev.Detail = err.Error()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = clock.Now()
	}
	rec.Record(ctx, ev)
}
