package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/plandesk/plandesk/internal/domain"
)

const eventColumns = `id, owner_id, owner_contact, name, event_type, location_type, description,
	       event_date, guest_count, budget, status, pending, decision, auto_cancelled, seeded,
	       activity_log, version, created_at, updated_at`

// EventStore persists the event collection. Writes are optimistic: Update
// only succeeds while the row still carries the version the caller read.
type EventStore struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventStore(db *dbpg.DB) *EventStore {
	return &EventStore{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventStore) Create(ctx context.Context, e *domain.Event) error {
	pending, decision, activity, err := encodeDocs(e)
	if err != nil {
		return err
	}

	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OwnerID, e.OwnerContact, e.Name, e.Type, e.LocationType, e.Description,
		e.Date, e.GuestCount, e.Budget, e.Status, pending, decision, e.AutoCancelled, e.Seeded,
		activity, e.Version, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventStore) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return e, nil
}

func (r *EventStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events by owner: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventStore) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// Update writes the whole record back guarded by the version the caller
// read. Zero rows affected on an existing row means another writer got
// there first.
func (r *EventStore) Update(ctx context.Context, e *domain.Event, expectedVersion int64) error {
	pending, decision, activity, err := encodeDocs(e)
	if err != nil {
		return err
	}

	query := `UPDATE events
			  SET name = $3, event_type = $4, location_type = $5, description = $6,
			      event_date = $7, guest_count = $8, budget = $9, status = $10,
			      pending = $11, decision = $12, auto_cancelled = $13,
			      activity_log = $14, version = $15, updated_at = $16
			  WHERE id = $1 AND version = $2`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, expectedVersion,
		e.Name, e.Type, e.LocationType, e.Description,
		e.Date, e.GuestCount, e.Budget, e.Status,
		pending, decision, e.AutoCancelled,
		activity, expectedVersion+1, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if affected == 0 {
		var exists bool
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, e.ID)
		if err != nil {
			return fmt.Errorf("check event: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan existence: %w", err)
		}
		if !exists {
			return domain.ErrEventNotFound
		}
		return domain.ErrStaleState
	}

	e.Version = expectedVersion + 1
	return nil
}

// BulkInsert is the seed path: one transaction, no validation, rows arrive
// already flagged as seeded.
func (r *EventStore) BulkInsert(ctx context.Context, events []*domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	for _, e := range events {
		pending, decision, activity, err := encodeDocs(e)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(
			ctx, query,
			e.ID, e.OwnerID, e.OwnerContact, e.Name, e.Type, e.LocationType, e.Description,
			e.Date, e.GuestCount, e.Budget, e.Status, pending, decision, e.AutoCancelled, e.Seeded,
			activity, e.Version, e.CreatedAt, e.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert seed event %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

func encodeDocs(e *domain.Event) (pending, decision, activity []byte, err error) {
	if e.Pending != nil {
		if pending, err = json.Marshal(e.Pending); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal pending request: %w", err)
		}
	}
	if e.Decision != nil {
		if decision, err = json.Marshal(e.Decision); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal decision: %w", err)
		}
	}
	log := e.ActivityLog
	if log == nil {
		log = []domain.AuditEntry{}
	}
	if activity, err = json.Marshal(log); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal activity log: %w", err)
	}
	return pending, decision, activity, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*domain.Event, error) {
	var (
		e        domain.Event
		pending  []byte
		decision []byte
		activity []byte
	)
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.OwnerContact, &e.Name, &e.Type, &e.LocationType, &e.Description,
		&e.Date, &e.GuestCount, &e.Budget, &e.Status, &pending, &decision, &e.AutoCancelled, &e.Seeded,
		&activity, &e.Version, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(pending) > 0 {
		e.Pending = &domain.PendingRequest{}
		if err = json.Unmarshal(pending, e.Pending); err != nil {
			return nil, fmt.Errorf("unmarshal pending request: %w", err)
		}
	}
	if len(decision) > 0 {
		e.Decision = &domain.Decision{}
		if err = json.Unmarshal(decision, e.Decision); err != nil {
			return nil, fmt.Errorf("unmarshal decision: %w", err)
		}
	}
	if err = json.Unmarshal(activity, &e.ActivityLog); err != nil {
		return nil, fmt.Errorf("unmarshal activity log: %w", err)
	}

	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
