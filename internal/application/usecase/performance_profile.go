package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/domain/repository"
	"github.com/bnema/dozer/internal/logging"
)

// CustomProfileName is reported by Current after a single capability was
// toggled away from the applied profile.
const CustomProfileName = "custom"

// PerformanceProfileUseCase owns the named capability bundles and is the
// only writer of the shared engine settings.
type PerformanceProfileUseCase struct {
	registry  *entity.TabRegistry
	settings  port.EngineSettings
	sessions  port.SessionResolver
	selection repository.ProfileSelectionRepository
	recorder  port.LifecycleRecorder
	clock     port.Clock

	profiles map[string]entity.PerformanceProfile
	current  string
}

// NewPerformanceProfileUseCase creates the manager with the built-in profiles
// registered. selection and recorder may be nil.
func NewPerformanceProfileUseCase(
	registry *entity.TabRegistry,
	settings port.EngineSettings,
	sessions port.SessionResolver,
	selection repository.ProfileSelectionRepository,
	recorder port.LifecycleRecorder,
	clock port.Clock,
) *PerformanceProfileUseCase {
	uc := &PerformanceProfileUseCase{
		registry:  registry,
		settings:  settings,
		sessions:  sessions,
		selection: selection,
		recorder:  recorder,
		clock:     clock,
		profiles:  make(map[string]entity.PerformanceProfile),
	}
	for _, p := range entity.BuiltinProfiles() {
		uc.profiles[p.Name()] = p
	}
	return uc
}

// Register adds or replaces a named profile.
func (uc *PerformanceProfileUseCase) Register(profile entity.PerformanceProfile) {
	uc.profiles[profile.Name()] = profile
}

// Profile looks up a registered profile.
func (uc *PerformanceProfileUseCase) Profile(name string) (entity.PerformanceProfile, bool) {
	p, ok := uc.profiles[name]
	return p, ok
}

// Profiles returns every registered profile sorted by name.
func (uc *PerformanceProfileUseCase) Profiles() []entity.PerformanceProfile {
	out := make([]entity.PerformanceProfile, 0, len(uc.profiles))
	for _, p := range uc.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Current returns the name of the last applied profile, "" before the first Apply.
func (uc *PerformanceProfileUseCase) Current() string {
	return uc.current
}

// Apply writes every flag of the named profile into the engine settings,
// then reloads each registered tab once so new content picks them up.
func (uc *PerformanceProfileUseCase) Apply(ctx context.Context, name string) error {
	ctx = logging.WithProfile(ctx, name)
	log := logging.FromContext(ctx)

	profile, ok := uc.profiles[name]
	if !ok {
		return fmt.Errorf("apply profile %q: %w", name, entity.ErrUnknownProfile)
	}

	for _, c := range entity.AllCapabilities() {
		uc.settings.SetFlag(c, profile.Flag(c))
	}
	uc.current = name

	reloaded, failed := uc.reloadAll(ctx)

	log.Info().
		Int("reloaded", reloaded).
		Int("failed", failed).
		Msg("performance profile applied")

	if uc.selection != nil {
		if err := uc.selection.SaveSelected(ctx, name); err != nil {
			log.Warn().Err(err).Msg("failed to persist selected profile")
		}
	}

	record(ctx, uc.recorder, uc.clock, entity.LifecycleEvent{
		Kind:    entity.EventProfileApplied,
		Profile: name,
		OK:      failed == 0,
		Detail:  fmt.Sprintf("reloaded %d tabs", reloaded),
	}, nil)

	return nil
}

// SetCapability toggles a single flag and reloads every tab.
func (uc *PerformanceProfileUseCase) SetCapability(ctx context.Context, c entity.Capability, enabled bool) error {
	if _, err := entity.ParseCapability(string(c)); err != nil {
		return fmt.Errorf("set capability: %w", err)
	}
	log := logging.FromContext(ctx)

	uc.settings.SetFlag(c, enabled)
	if uc.current != "" {
		if p, ok := uc.profiles[uc.current]; !ok || p.Flag(c) != enabled {
			uc.current = CustomProfileName
		}
	}

	reloaded, failed := uc.reloadAll(ctx)

	log.Info().
		Str("capability", string(c)).
		Bool("enabled", enabled).
		Int("reloaded", reloaded).
		Msg("capability changed")

	record(ctx, uc.recorder, uc.clock, entity.LifecycleEvent{
		Kind:    entity.EventCapabilitySet,
		Profile: uc.current,
		OK:      failed == 0,
		Detail:  fmt.Sprintf("%s=%t", c, enabled),
	}, nil)

	return nil
}

// Restore applies the persisted profile selection, falling back to
// fallback when nothing usable was stored.
func (uc *PerformanceProfileUseCase) Restore(ctx context.Context, fallback string) error {
	log := logging.FromContext(ctx)

	name := ""
	if uc.selection != nil {
		stored, err := uc.selection.GetSelected(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load selected profile")
		} else {
			name = stored
		}
	}
	if _, ok := uc.profiles[name]; !ok {
		if name != "" {
			log.Warn().Str("profile", name).Msg("stored profile no longer registered")
		}
		name = fallback
	}
	return uc.Apply(ctx, name)
}

func (uc *PerformanceProfileUseCase) reloadAll(ctx context.Context) (reloaded, failed int) {
	log := logging.FromContext(ctx)
	for _, id := range uc.registry.IDs() {
		sess, ok := uc.sessions.Session(id)
		if !ok {
			continue
		}
		if err := sess.Reload(ctx); err != nil {
			failed++
			log.Warn().Err(err).Str("tab_id", string(id)).Msg("reload failed")
			continue
		}
		reloaded++
	}
	return reloaded, failed
}
