package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/plandesk/plandesk/internal/domain"
	"github.com/plandesk/plandesk/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newService(t *testing.T) (*PlannerService, *mocks.MockRecordStore, *mocks.MockChangeNotifier) {
	t.Helper()
	store := mocks.NewMockRecordStore(t)
	notifier := mocks.NewMockChangeNotifier(t)
	svc := NewPlannerService(store, notifier, newTestLogger(t))
	return svc, store, notifier
}

func storedEvent(status domain.Status) *domain.Event {
	now := time.Now().UTC()
	return &domain.Event{
		ID:           "3b2f8a34-6c5b-4c71-9f2e-8f1f4a7c9d10",
		OwnerID:      "owner-1",
		OwnerContact: "owner@example.com",
		Name:         "Spring Gala",
		Type:         domain.EventTypeGala,
		LocationType: domain.LocationGardenEstate,
		Date:         now.Add(45 * 24 * time.Hour),
		GuestCount:   80,
		Budget:       decimal.NewFromInt(32000),
		Status:       status,
		ActivityLog:  []domain.AuditEntry{{Timestamp: now, Actor: "owner-1", Action: domain.ActionCreated}},
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPlannerService_Create_Success(t *testing.T) {
	svc, store, notifier := newService(t)

	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyChanged(mock.Anything, mock.Anything, domain.ActionCreated).Return()

	input := domain.CreateEventInput{
		OwnerID:      "owner-1",
		OwnerContact: "owner@example.com",
		Name:         "Spring Gala",
		Type:         domain.EventTypeGala,
		LocationType: domain.LocationGardenEstate,
		Date:         time.Now().UTC().Add(45 * 24 * time.Hour),
		GuestCount:   80,
		Budget:       decimal.NewFromInt(32000),
	}

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.StatusSubmitted, event.Status)
	assert.Equal(t, int64(1), event.Version)
	require.Len(t, event.ActivityLog, 1)
	assert.Equal(t, domain.ActionCreated, event.ActivityLog[0].Action)
	assert.Equal(t, "owner-1", event.ActivityLog[0].Actor)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPlannerService_Create_BudgetBelowFloor(t *testing.T) {
	svc, _, _ := newService(t)

	input := domain.CreateEventInput{
		OwnerID:      "owner-1",
		OwnerContact: "owner@example.com",
		Name:         "Spring Gala",
		Type:         domain.EventTypeGala,
		LocationType: domain.LocationCastle,
		Date:         time.Now().UTC().Add(45 * 24 * time.Hour),
		GuestCount:   80,
		Budget:       decimal.NewFromInt(49999),
	}

	_, err := svc.Create(context.Background(), input)

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlannerService_Update_Success(t *testing.T) {
	svc, store, notifier := newService(t)

	event := storedEvent(domain.StatusSubmitted)
	store.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)
	store.EXPECT().Update(mock.Anything, mock.Anything, int64(1)).Return(nil)
	notifier.EXPECT().NotifyChanged(mock.Anything, mock.Anything, domain.ActionUpdated).Return()

	input := domain.UpdateEventInput{
		Name:         "Autumn Gala",
		Type:         domain.EventTypeCorporate,
		LocationType: domain.LocationGrandBallroom,
		Date:         time.Now().UTC().Add(60 * 24 * time.Hour),
		GuestCount:   90,
		Budget:       decimal.NewFromInt(41000),
	}

	updated, err := svc.Update(context.Background(), event.ID, domain.Actor{ID: "owner-1", Role: domain.RoleOwner}, input)

	require.NoError(t, err)
	assert.Equal(t, "Autumn Gala", updated.Name)
	require.Len(t, updated.ActivityLog, 2)
	assert.Equal(t, domain.ActionUpdated, updated.ActivityLog[1].Action)

	time.Sleep(50 * time.Millisecond)
}

func TestPlannerService_Update_StaleWrite(t *testing.T) {
	svc, store, _ := newService(t)

	event := storedEvent(domain.StatusSubmitted)
	store.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)
	store.EXPECT().Update(mock.Anything, mock.Anything, int64(1)).Return(domain.ErrStaleState)

	input := domain.UpdateEventInput{
		Name:         "Autumn Gala",
		Type:         domain.EventTypeGala,
		LocationType: domain.LocationGardenEstate,
		Date:         time.Now().UTC().Add(60 * 24 * time.Hour),
		GuestCount:   90,
		Budget:       decimal.NewFromInt(32000),
	}

	_, err := svc.Update(context.Background(), event.ID, domain.Actor{ID: "owner-1", Role: domain.RoleOwner}, input)

	require.ErrorIs(t, err, domain.ErrStaleState)
}

func TestPlannerService_Update_ForeignOwnerForbidden(t *testing.T) {
	svc, store, _ := newService(t)

	event := storedEvent(domain.StatusSubmitted)
	store.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	input := domain.UpdateEventInput{
		Name:         "Hijacked",
		Type:         domain.EventTypeGala,
		LocationType: domain.LocationGardenEstate,
		Date:         time.Now().UTC().Add(60 * 24 * time.Hour),
		GuestCount:   90,
		Budget:       decimal.NewFromInt(32000),
	}

	_, err := svc.Update(context.Background(), event.ID, domain.Actor{ID: "owner-2", Role: domain.RoleOwner}, input)

	require.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestPlannerService_Get_OwnerScope(t *testing.T) {
	svc, store, _ := newService(t)

	event := storedEvent(domain.StatusSubmitted)
	store.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	got, err := svc.Get(context.Background(), event.ID, domain.Actor{ID: "owner-1", Role: domain.RoleOwner})
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
}

func TestPlannerService_Get_ForeignOwnerForbidden(t *testing.T) {
	svc, store, _ := newService(t)

	event := storedEvent(domain.StatusSubmitted)
	store.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	_, err := svc.Get(context.Background(), event.ID, domain.Actor{ID: "owner-2", Role: domain.RoleOwner})
	require.ErrorIs(t, err, domain.ErrNotPermitted)
}

func TestPlannerService_Get_NotFound(t *testing.T) {
	svc, store, _ := newService(t)

	store.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Get(context.Background(), "missing", domain.Actor{ID: "rev-1", Role: domain.RoleReviewer})
	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestPlannerService_List_ReviewerSeesAll(t *testing.T) {
	svc, store, _ := newService(t)

	all := []*domain.Event{storedEvent(domain.StatusSubmitted), storedEvent(domain.StatusCancelled)}
	store.EXPECT().ListAll(mock.Anything).Return(all, nil)

	events, err := svc.List(context.Background(), domain.Actor{ID: "rev-1", Role: domain.RoleReviewer})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestPlannerService_List_OwnerSeesOwnPartition(t *testing.T) {
	svc, store, _ := newService(t)

	own := []*domain.Event{storedEvent(domain.StatusSubmitted)}
	store.EXPECT().ListByOwner(mock.Anything, "owner-1").Return(own, nil)

	events, err := svc.List(context.Background(), domain.Actor{ID: "owner-1", Role: domain.RoleOwner})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPlannerService_Dashboard(t *testing.T) {
	svc, store, _ := newService(t)

	all := []*domain.Event{
		storedEvent(domain.StatusSubmitted),
		storedEvent(domain.StatusInProgress),
		storedEvent(domain.StatusInProgress),
	}
	store.EXPECT().ListAll(mock.Anything).Return(all, nil)

	summary, err := svc.Dashboard(context.Background(), domain.Actor{ID: "rev-1", Role: domain.RoleReviewer})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Counts[domain.StatusSubmitted])
	assert.Equal(t, 2, summary.Counts[domain.StatusInProgress])
	assert.Equal(t, 0, summary.Counts[domain.StatusCancelled])
}

func TestPlannerService_Seed_FillsDefaultsAndMarks(t *testing.T) {
	svc, store, _ := newService(t)

	var inserted []*domain.Event
	store.EXPECT().BulkInsert(mock.Anything, mock.Anything).Run(func(ctx context.Context, events []*domain.Event) {
		inserted = events
	}).Return(nil)

	events := []*domain.Event{
		{OwnerID: "owner-1", Name: "Seeded Gala"},
		{ID: "fixed-id", OwnerID: "owner-2", Name: "Another", Status: domain.StatusInProgress, Version: 3},
	}

	require.NoError(t, svc.Seed(context.Background(), events))

	require.Len(t, inserted, 2)
	assert.NotEmpty(t, inserted[0].ID)
	assert.Equal(t, domain.StatusSubmitted, inserted[0].Status)
	assert.Equal(t, int64(1), inserted[0].Version)
	assert.False(t, inserted[0].CreatedAt.IsZero())
	assert.False(t, inserted[0].UpdatedAt.IsZero())
	assert.True(t, inserted[0].Seeded)

	assert.Equal(t, "fixed-id", inserted[1].ID)
	assert.Equal(t, domain.StatusInProgress, inserted[1].Status)
	assert.Equal(t, int64(3), inserted[1].Version)
	assert.True(t, inserted[1].Seeded)
}
