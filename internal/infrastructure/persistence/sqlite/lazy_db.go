package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/logging"
)

// ErrClosed is returned by LazyDB.DB after Close.
var ErrClosed = errors.New("event database closed")

// LazyDB implements port.DatabaseProvider. The file is opened and migrated
// on first use, so runs that never record an event never touch it.
type LazyDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	opened  bool
	closed  bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the connection, opening it on the first call. A failed open is
// not retried.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrClosed
	}
	if !l.opened {
		l.opened = true
		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			logging.FromContext(ctx).Error().Err(l.openErr).Str("path", l.path).Msg("event database unavailable")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.openErr)
	}
	return l.db, nil
}

// Close closes the connection if it was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	db := l.db
	l.db = nil
	return Close(db)
}

// IsInitialized reports whether a connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.path
}
