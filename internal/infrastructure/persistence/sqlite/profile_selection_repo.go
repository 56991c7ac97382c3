package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dozer/internal/domain/repository"
)

const (
	upsertProfileSelection = `INSERT INTO profile_selection (id, name, updated_at) VALUES (1, ?, ?)
ON CONFLICT(id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at`

	selectProfileSelection = `SELECT name FROM profile_selection WHERE id = 1`
)

type profileSelectionRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewProfileSelectionRepository creates a repository for the last applied profile.
func NewProfileSelectionRepository(db *sql.DB) repository.ProfileSelectionRepository {
	return &profileSelectionRepo{db: db, now: time.Now}
}

func (r *profileSelectionRepo) SaveSelected(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("profile name cannot be empty")
	}
	if _, err := r.db.ExecContext(ctx, upsertProfileSelection, name, r.now().UnixMilli()); err != nil {
		return fmt.Errorf("save profile selection: %w", err)
	}
	return nil
}

func (r *profileSelectionRepo) GetSelected(ctx context.Context) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, selectProfileSelection).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get profile selection: %w", err)
	}
	return name, nil
}
