package ports

import (
	"context"

	"github.com/plandesk/plandesk/internal/domain"
)

// RecordStore is the persistence collaborator. Update is optimistic: it only
// writes when the row still carries expectedVersion and returns
// domain.ErrStaleState otherwise, so the second of two racing writers fails
// instead of silently overwriting the first.
type RecordStore interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event, expectedVersion int64) error
	BulkInsert(ctx context.Context, events []*domain.Event) error
}
