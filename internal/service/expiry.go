package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/plandesk/plandesk/internal/domain"
)

// SweepExpired force-cancels every active event dated strictly before today.
// The sweep is idempotent: already-terminal events are skipped, and an event
// another writer touches mid-sweep is left for the next tick rather than
// fought over.
func (s *PlannerService) SweepExpired(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	now := time.Now().UTC()
	var cancelled []*domain.Event
	for _, e := range events {
		if !e.Expired(now) {
			continue
		}

		expired, err := s.applyTransition(ctx, e.ID, domain.SystemActor, domain.TransitionExpire, "")
		if err != nil {
			if errors.Is(err, domain.ErrStaleState) || errors.Is(err, domain.ErrInvalidState) {
				s.logger.Debug("expiry skipped, event moved concurrently",
					logger.String("event_id", e.ID),
				)
				continue
			}
			return cancelled, fmt.Errorf("expire event %s: %w", e.ID, err)
		}
		cancelled = append(cancelled, expired)
	}

	return cancelled, nil
}
