package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/plandesk/plandesk/internal/domain"
	"github.com/plandesk/plandesk/internal/monitoring"
	"github.com/plandesk/plandesk/internal/service/ports"
)

// PlannerService is the workflow engine behind both dashboards. Every
// mutation re-reads the event immediately before applying its transition and
// writes back guarded by the version it read, so concurrent conflicting
// writers fail with domain.ErrStaleState instead of overwriting each other.
type PlannerService struct {
	store    ports.RecordStore
	notifier ports.ChangeNotifier
	logger   logger.Logger
}

func NewPlannerService(store ports.RecordStore, notifier ports.ChangeNotifier, logger logger.Logger) *PlannerService {
	return &PlannerService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *PlannerService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	now := time.Now().UTC()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	owner := domain.Actor{ID: input.OwnerID, Role: domain.RoleOwner}
	event := &domain.Event{
		ID:           uuid.New().String(),
		OwnerID:      input.OwnerID,
		OwnerContact: input.OwnerContact,
		Name:         input.Name,
		Type:         input.Type,
		LocationType: input.LocationType,
		Description:  input.Description,
		Date:         input.Date,
		GuestCount:   input.GuestCount,
		Budget:       input.Budget,
		Status:       domain.StatusSubmitted,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	event.AppendAudit(owner, domain.ActionCreated, "", now)

	if err := s.store.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("owner_id", event.OwnerID),
		logger.String("location_type", string(event.LocationType)),
	)

	go s.notifier.NotifyChanged(context.WithoutCancel(ctx), event, domain.ActionCreated)

	return event, nil
}

func (s *PlannerService) Update(ctx context.Context, id string, actor domain.Actor, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	expected := event.Version
	if err = event.ApplyUpdate(actor, input, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = s.store.Update(ctx, event, expected); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", event.ID),
		logger.String("actor_id", actor.ID),
	)

	go s.notifier.NotifyChanged(context.WithoutCancel(ctx), event, domain.ActionUpdated)

	return event, nil
}

func (s *PlannerService) Get(ctx context.Context, id string, actor domain.Actor) (*domain.Event, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !domain.CanRead(actor, event) {
		return nil, domain.ErrNotPermitted
	}
	return event, nil
}

// List returns the full collection for the reviewer and the owner's own
// partition otherwise.
func (s *PlannerService) List(ctx context.Context, actor domain.Actor) ([]*domain.Event, error) {
	if actor.Role == domain.RoleReviewer {
		return s.store.ListAll(ctx)
	}
	return s.store.ListByOwner(ctx, actor.ID)
}

// Dashboard recomputes the status summary for the actor's visible scope.
func (s *PlannerService) Dashboard(ctx context.Context, actor domain.Actor) (domain.StatusSummary, error) {
	events, err := s.List(ctx, actor)
	if err != nil {
		return domain.StatusSummary{}, fmt.Errorf("list events: %w", err)
	}
	return domain.Summarize(events), nil
}

// GlobalSummary recomputes counts over everything and publishes them to the
// metrics gauges.
func (s *PlannerService) GlobalSummary(ctx context.Context) (domain.StatusSummary, error) {
	events, err := s.store.ListAll(ctx)
	if err != nil {
		return domain.StatusSummary{}, fmt.Errorf("list events: %w", err)
	}
	summary := domain.Summarize(events)
	monitoring.RecordStatusCounts(summary)
	return summary, nil
}

// Seed bulk-inserts externally produced test data. It bypasses field
// validation on purpose and marks every row so seeded records can be told
// apart from user-issued ones.
func (s *PlannerService) Seed(ctx context.Context, events []*domain.Event) error {
	now := time.Now().UTC()
	for _, e := range events {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.Status == "" {
			e.Status = domain.StatusSubmitted
		}
		if e.Version == 0 {
			e.Version = 1
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		if e.UpdatedAt.IsZero() {
			e.UpdatedAt = now
		}
		e.Seeded = true
	}

	if err := s.store.BulkInsert(ctx, events); err != nil {
		return fmt.Errorf("bulk insert: %w", err)
	}

	s.logger.Info("seed data inserted", logger.Int("count", len(events)))
	return nil
}

// applyTransition is the single write path for every lifecycle operation:
// fresh read, in-memory transition with its audit entry, version-guarded
// write.
func (s *PlannerService) applyTransition(ctx context.Context, id string, actor domain.Actor, kind domain.TransitionKind, note string) (*domain.Event, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	expected := event.Version
	action, err := event.Apply(kind, actor, note, time.Now().UTC())
	if err != nil {
		monitoring.RecordTransition(string(kind), false)
		return nil, err
	}

	if err = s.store.Update(ctx, event, expected); err != nil {
		monitoring.RecordTransition(string(kind), false)
		return nil, fmt.Errorf("update event: %w", err)
	}
	monitoring.RecordTransition(string(kind), true)

	s.logger.Info("transition applied",
		logger.String("event_id", event.ID),
		logger.String("kind", string(kind)),
		logger.String("actor_id", actor.ID),
		logger.String("status", string(event.Status)),
	)

	go s.notifier.NotifyChanged(context.WithoutCancel(ctx), event, action)

	return event, nil
}
