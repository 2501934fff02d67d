package notification

import (
	"context"

	"github.com/plandesk/plandesk/internal/domain"
	"github.com/plandesk/plandesk/internal/service/ports"
)

// Fanout delivers one change to every configured sink.
type Fanout []ports.ChangeNotifier

func (f Fanout) NotifyChanged(ctx context.Context, e *domain.Event, action domain.Action) {
	for _, n := range f {
		n.NotifyChanged(ctx, e, action)
	}
}
