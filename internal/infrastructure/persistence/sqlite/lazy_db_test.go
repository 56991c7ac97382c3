package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "events.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	assert.False(t, lazy.IsInitialized())

	db1, err := lazy.DB(ctx)
	require.NoError(t, err)
	db2, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.True(t, lazy.IsInitialized())
	assert.Same(t, db1, db2)

	var one int
	require.NoError(t, db1.QueryRowContext(ctx, "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "events.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB("/some/path/to/db.sqlite")
	assert.NoError(t, lazy.Close())
	assert.Equal(t, "/some/path/to/db.sqlite", lazy.Path())
}

func TestLazyDB_DBAfterClose(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "events.sqlite"))

	_, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())

	_, err = lazy.DB(ctx)
	assert.ErrorIs(t, err, sqlite.ErrClosed)
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_InitFailureIsSticky(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	_, err = lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())

	repo := sqlite.NewLazyLifecycleEventRepository(lazy)
	assert.Error(t, repo.Append(ctx, &entity.LifecycleEvent{Kind: entity.EventTabOpened}))
}

func TestLazyRepositories(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "events.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	events := sqlite.NewLazyLifecycleEventRepository(lazy)
	selection := sqlite.NewLazyProfileSelectionRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, events.Append(ctx, &entity.LifecycleEvent{Kind: entity.EventTabOpened, OK: true, CreatedAt: at(0)}))
	assert.True(t, lazy.IsInitialized())

	got, err := events.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, selection.SaveSelected(ctx, entity.ProfileMinimal))
	name, err := selection.GetSelected(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ProfileMinimal, name)
}
