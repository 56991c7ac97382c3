package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/domain/repository"
	"github.com/bnema/dozer/internal/logging"
)

const (
	insertLifecycleEvent = `INSERT INTO lifecycle_events (kind, tab_id, url, profile, ok, detail, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectRecentLifecycleEvents = `SELECT id, kind, tab_id, url, profile, ok, detail, created_at
FROM lifecycle_events
ORDER BY created_at DESC, id DESC
LIMIT ?`

	deleteLifecycleEventsBefore = `DELETE FROM lifecycle_events WHERE created_at < ?`
)

type lifecycleEventRepo struct {
	db *sql.DB
}

// NewLifecycleEventRepository creates a new lifecycle event repository.
func NewLifecycleEventRepository(db *sql.DB) repository.LifecycleEventRepository {
	return &lifecycleEventRepo{db: db}
}

// Append stores event and sets its ID.
func (r *lifecycleEventRepo) Append(ctx context.Context, event *entity.LifecycleEvent) error {
	if event == nil {
		return errors.New("lifecycle event cannot be nil")
	}
	if event.Kind == "" {
		return errors.New("lifecycle event kind cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, insertLifecycleEvent,
		string(event.Kind),
		string(event.TabID),
		event.URL,
		event.Profile,
		boolToInt(event.OK),
		event.Detail,
		event.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert lifecycle event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lifecycle event id: %w", err)
	}
	event.ID = id
	return nil
}

// Recent returns the newest events first.
func (r *lifecycleEventRepo) Recent(ctx context.Context, limit int) ([]*entity.LifecycleEvent, error) {
	if limit <= 0 {
		return []*entity.LifecycleEvent{}, nil
	}

	rows, err := r.db.QueryContext(ctx, selectRecentLifecycleEvents, limit)
	if err != nil {
		return nil, fmt.Errorf("query lifecycle events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logging.FromContext(ctx).Debug().Err(closeErr).Msg("failed to close lifecycle event rows")
		}
	}()

	events := make([]*entity.LifecycleEvent, 0, limit)
	for rows.Next() {
		var (
			ev        entity.LifecycleEvent
			kind      string
			tabID     string
			ok        int64
			createdAt int64
		)
		if err := rows.Scan(&ev.ID, &kind, &tabID, &ev.URL, &ev.Profile, &ok, &ev.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan lifecycle event: %w", err)
		}
		ev.Kind = entity.LifecycleEventKind(kind)
		ev.TabID = entity.TabID(tabID)
		ev.OK = ok != 0
		ev.CreatedAt = time.UnixMilli(createdAt).UTC()
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lifecycle events: %w", err)
	}
	return events, nil
}

// PruneBefore deletes events strictly older than cutoff.
func (r *lifecycleEventRepo) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteLifecycleEventsBefore, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune lifecycle events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune lifecycle events: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Int64("removed", n).
		Time("cutoff", cutoff).
		Msg("pruned lifecycle events")
	return n, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
