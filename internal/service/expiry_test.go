package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plandesk/plandesk/internal/domain"
)

func TestPlannerService_SweepExpired_CancelsPastActive(t *testing.T) {
	svc, store, notifier := newService(t)

	expired := storedEvent(domain.StatusInProgress)
	expired.Date = time.Now().UTC().Add(-48 * time.Hour)

	future := storedEvent(domain.StatusSubmitted)
	future.ID = "11111111-1111-4111-8111-111111111111"

	terminal := storedEvent(domain.StatusCompleted)
	terminal.ID = "22222222-2222-4222-8222-222222222222"
	terminal.Date = time.Now().UTC().Add(-48 * time.Hour)

	store.EXPECT().ListAll(mock.Anything).Return([]*domain.Event{expired, future, terminal}, nil)
	store.EXPECT().GetByID(mock.Anything, expired.ID).Return(expired, nil)
	store.EXPECT().Update(mock.Anything, mock.Anything, int64(1)).Return(nil)
	notifier.EXPECT().NotifyChanged(mock.Anything, mock.Anything, domain.ActionAutoCancelled).Return()

	cancelled, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, expired.ID, cancelled[0].ID)
	assert.Equal(t, domain.StatusCancelled, cancelled[0].Status)
	assert.True(t, cancelled[0].AutoCancelled)
	require.Len(t, cancelled[0].ActivityLog, 2, "exactly one new entry per sweep")
	assert.Equal(t, domain.ActionAutoCancelled, cancelled[0].ActivityLog[1].Action)
	assert.Equal(t, "system", cancelled[0].ActivityLog[1].Actor)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPlannerService_SweepExpired_NothingToDo(t *testing.T) {
	svc, store, _ := newService(t)

	store.EXPECT().ListAll(mock.Anything).Return([]*domain.Event{storedEvent(domain.StatusSubmitted)}, nil)

	cancelled, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestPlannerService_SweepExpired_SkipsEventMovedConcurrently(t *testing.T) {
	svc, store, _ := newService(t)

	expired := storedEvent(domain.StatusInProgress)
	expired.Date = time.Now().UTC().Add(-48 * time.Hour)

	store.EXPECT().ListAll(mock.Anything).Return([]*domain.Event{expired}, nil)
	store.EXPECT().GetByID(mock.Anything, expired.ID).Return(expired, nil)
	store.EXPECT().Update(mock.Anything, mock.Anything, int64(1)).Return(domain.ErrStaleState)

	cancelled, err := svc.SweepExpired(context.Background())

	require.NoError(t, err, "a lost race is not a sweep failure")
	assert.Empty(t, cancelled)
}

func TestPlannerService_SweepExpired_SkipsPostponedEvent(t *testing.T) {
	svc, store, _ := newService(t)

	// Listed while expired, but the owner pushed the date out (and bumped
	// the version) before the sweep re-read the row. The fresh value no
	// longer satisfies the date rule, so it must not be cancelled.
	listed := storedEvent(domain.StatusInProgress)
	listed.Date = time.Now().UTC().Add(-48 * time.Hour)

	postponed := storedEvent(domain.StatusInProgress)
	postponed.Date = time.Now().UTC().Add(30 * 24 * time.Hour)
	postponed.Version = 2

	store.EXPECT().ListAll(mock.Anything).Return([]*domain.Event{listed}, nil)
	store.EXPECT().GetByID(mock.Anything, listed.ID).Return(postponed, nil)

	cancelled, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
	assert.Equal(t, domain.StatusInProgress, postponed.Status)
	assert.False(t, postponed.AutoCancelled)
	assert.Len(t, postponed.ActivityLog, 1)
}

func TestPlannerService_SweepExpired_SkipsFreshlyTerminal(t *testing.T) {
	svc, store, _ := newService(t)

	// Listed as active but already cancelled by the time it is re-read.
	listed := storedEvent(domain.StatusInProgress)
	listed.Date = time.Now().UTC().Add(-48 * time.Hour)

	fresh := storedEvent(domain.StatusCancelled)
	fresh.Date = listed.Date

	store.EXPECT().ListAll(mock.Anything).Return([]*domain.Event{listed}, nil)
	store.EXPECT().GetByID(mock.Anything, listed.ID).Return(fresh, nil)

	cancelled, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestPlannerService_SweepExpired_ListFails(t *testing.T) {
	svc, store, _ := newService(t)

	store.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.SweepExpired(context.Background())

	require.Error(t, err)
}
