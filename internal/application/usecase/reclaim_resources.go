package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
)

const defaultReclaimWorkers = 3

// ReclaimResult summarizes a best-effort reclaim.
// OK is true only when every delegated clear succeeded.
type ReclaimResult struct {
	OK        bool
	Err       error
	Attempted int
	Failed    int
}

func (r *ReclaimResult) merge(other ReclaimResult) {
	r.Attempted += other.Attempted
	r.Failed += other.Failed
	r.Err = errors.Join(r.Err, other.Err)
	r.OK = r.Failed == 0
}

// ReclaimResourcesUseCase clears engine caches on demand.
type ReclaimResourcesUseCase struct {
	registry  *entity.TabRegistry
	resources port.ProfileResources
	sessions  port.SessionResolver
	recorder  port.LifecycleRecorder
	clock     port.Clock
	workers   int
}

// NewReclaimResourcesUseCase creates the reclaimer. workers bounds how many
// clears run at once; values below 1 use the default.
func NewReclaimResourcesUseCase(
	registry *entity.TabRegistry,
	resources port.ProfileResources,
	sessions port.SessionResolver,
	recorder port.LifecycleRecorder,
	clock port.Clock,
	workers int,
) *ReclaimResourcesUseCase {
	if workers < 1 {
		workers = defaultReclaimWorkers
	}
	return &ReclaimResourcesUseCase{
		registry:  registry,
		resources: resources,
		sessions:  sessions,
		recorder:  recorder,
		clock:     clock,
		workers:   workers,
	}
}

// ReclaimAll clears the profile cache, visited links and cookies, then the
// per-tab cache of every registered tab whose session exposes one.
// A failing clear never prevents the others from running.
func (uc *ReclaimResourcesUseCase) ReclaimAll(ctx context.Context) ReclaimResult {
	log := logging.FromContext(ctx)

	result := uc.ReclaimProfile(ctx, uc.resources)

	var clearers []namedClear
	for _, id := range uc.registry.IDs() {
		sess, ok := uc.sessions.Session(id)
		if !ok {
			continue
		}
		if c, ok := sess.(port.TabCacheClearer); ok {
			clearers = append(clearers, namedClear{
				name: "tab cache " + string(id),
				fn:   c.ClearCache,
			})
		}
	}
	result.merge(uc.run(ctx, clearers))

	if result.OK {
		log.Info().Int("attempted", result.Attempted).Msg("resources reclaimed")
	} else {
		log.Warn().
			Err(result.Err).
			Int("attempted", result.Attempted).
			Int("failed", result.Failed).
			Msg("resources partially reclaimed")
	}

	record(ctx, uc.recorder, uc.clock, entity.LifecycleEvent{
		Kind:   entity.EventReclaimed,
		OK:     result.OK,
		Detail: fmt.Sprintf("%d/%d clears succeeded", result.Attempted-result.Failed, result.Attempted),
	}, result.Err)

	return result
}

// ReclaimProfile runs the three profile-wide clears against resources.
// It is also used for throwaway profiles that are discarded on close.
func (uc *ReclaimResourcesUseCase) ReclaimProfile(ctx context.Context, resources port.ProfileResources) ReclaimResult {
	if resources == nil {
		return ReclaimResult{OK: true}
	}
	return uc.run(ctx, []namedClear{
		{name: "cache", fn: resources.ClearCache},
		{name: "visited links", fn: resources.ClearVisitedLinks},
		{name: "cookies", fn: resources.ClearCookies},
	})
}

type namedClear struct {
	name string
	fn   func(context.Context) error
}

func (uc *ReclaimResourcesUseCase) run(ctx context.Context, clears []namedClear) ReclaimResult {
	var (
		mu   sync.Mutex
		errs []error
	)

	// Plain group: one failure must not cancel the siblings.
	var g errgroup.Group
	g.SetLimit(uc.workers)
	for _, c := range clears {
		g.Go(func() error {
			if err := c.fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("clear %s: %w", c.name, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return ReclaimResult{
		OK:        len(errs) == 0,
		Err:       errors.Join(errs...),
		Attempted: len(clears),
		Failed:    len(errs),
	}
}
