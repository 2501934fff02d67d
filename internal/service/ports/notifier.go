package ports

import (
	"context"

	"github.com/plandesk/plandesk/internal/domain"
)

// ChangeNotifier is told about every applied transition. Implementations
// must not block the mutation path; the service calls them on their own
// goroutine.
type ChangeNotifier interface {
	NotifyChanged(ctx context.Context, e *domain.Event, action domain.Action)
}
