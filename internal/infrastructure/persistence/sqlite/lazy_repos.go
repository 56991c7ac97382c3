package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/domain/repository"
)

// LazyLifecycleEventRepository opens the database on the first call.
type LazyLifecycleEventRepository struct {
	provider port.DatabaseProvider
	repo     repository.LifecycleEventRepository
	once     sync.Once
	initErr  error
}

// NewLazyLifecycleEventRepository creates a lazy-loading lifecycle event repository.
func NewLazyLifecycleEventRepository(provider port.DatabaseProvider) repository.LifecycleEventRepository {
	return &LazyLifecycleEventRepository{provider: provider}
}

func (r *LazyLifecycleEventRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLifecycleEventRepository(db)
	})
	return r.initErr
}

func (r *LazyLifecycleEventRepository) Append(ctx context.Context, event *entity.LifecycleEvent) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Append(ctx, event)
}

func (r *LazyLifecycleEventRepository) Recent(ctx context.Context, limit int) ([]*entity.LifecycleEvent, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyLifecycleEventRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.PruneBefore(ctx, cutoff)
}

// LazyProfileSelectionRepository opens the database on the first call.
type LazyProfileSelectionRepository struct {
	provider port.DatabaseProvider
	repo     repository.ProfileSelectionRepository
	once     sync.Once
	initErr  error
}

// NewLazyProfileSelectionRepository creates a lazy-loading profile selection repository.
func NewLazyProfileSelectionRepository(provider port.DatabaseProvider) repository.ProfileSelectionRepository {
	return &LazyProfileSelectionRepository{provider: provider}
}

func (r *LazyProfileSelectionRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewProfileSelectionRepository(db)
	})
	return r.initErr
}

func (r *LazyProfileSelectionRepository) SaveSelected(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveSelected(ctx, name)
}

func (r *LazyProfileSelectionRepository) GetSelected(ctx context.Context) (string, error) {
	if err := r.init(ctx); err != nil {
		return "", err
	}
	return r.repo.GetSelected(ctx)
}
