package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/dozer/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// newMigrator returns a goose provider over the embedded migrations.
// The provider does not own db and must not be closed.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, db, fsys)
}

// RunMigrations applies all pending embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	migrator, err := newMigrator(db)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	results, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if len(results) == 0 {
		log.Debug().Msg("database schema up to date")
		return nil
	}

	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("database migration applied")
	}
	return nil
}

// GetMigrationStatus returns the current schema version.
func GetMigrationStatus(ctx context.Context, db *sql.DB) (int64, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return migrator.GetDBVersion(ctx)
}
