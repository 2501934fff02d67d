package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventInState(status Status) *Event {
	return &Event{
		ID:           "e1",
		OwnerID:      "owner-1",
		OwnerContact: "owner@example.com",
		Name:         "Spring Gala",
		Type:         EventTypeGala,
		LocationType: LocationGardenEstate,
		Date:         time.Now().UTC().Add(45 * 24 * time.Hour),
		GuestCount:   80,
		Budget:       decimal.NewFromInt(32000),
		Status:       status,
		Version:      1,
	}
}

func actorFor(kind TransitionKind) Actor {
	switch kind {
	case TransitionAccept, TransitionDecline, TransitionRequestCompletion,
		TransitionApproveCancellation, TransitionDenyCancellation:
		return Actor{ID: "rev-1", Role: RoleReviewer}
	case TransitionRequestCancellation, TransitionApproveCompletion, TransitionRejectCompletion:
		return Actor{ID: "owner-1", Role: RoleOwner}
	case TransitionExpire:
		return SystemActor
	}
	return Actor{}
}

func TestApply_Accept(t *testing.T) {
	e := eventInState(StatusSubmitted)
	now := time.Now().UTC()

	action, err := e.Apply(TransitionAccept, Actor{ID: "rev-1", Role: RoleReviewer}, "looks good", now)

	require.NoError(t, err)
	assert.Equal(t, ActionAccepted, action)
	assert.Equal(t, StatusInProgress, e.Status)
	require.NotNil(t, e.Decision)
	assert.Equal(t, OutcomeAccepted, e.Decision.Outcome)
	assert.Equal(t, "rev-1", e.Decision.DecidedBy)
	require.Len(t, e.ActivityLog, 1)
	assert.Equal(t, ActionAccepted, e.ActivityLog[0].Action)
	assert.Equal(t, "looks good", e.ActivityLog[0].Note)
}

func TestApply_Decline_Terminates(t *testing.T) {
	e := eventInState(StatusSubmitted)

	action, err := e.Apply(TransitionDecline, Actor{ID: "rev-1", Role: RoleReviewer}, "over capacity", time.Now().UTC())

	require.NoError(t, err)
	assert.Equal(t, ActionDeclined, action)
	assert.Equal(t, StatusCancelled, e.Status)
	assert.True(t, e.Status.Terminal())
	require.NotNil(t, e.Decision)
	assert.Equal(t, OutcomeDeclined, e.Decision.Outcome)
}

func TestApply_AcceptAfterTerminal_StateError(t *testing.T) {
	e := eventInState(StatusCancelled)
	before := *e

	_, err := e.Apply(TransitionAccept, Actor{ID: "rev-1", Role: RoleReviewer}, "retry", time.Now().UTC())

	require.Error(t, err)
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, StatusCancelled, stateErr.Current)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, before, *e)
	assert.Empty(t, e.ActivityLog)
}

func TestApply_AuthorizationCheckedBeforeState(t *testing.T) {
	// An owner poking a reviewer-only transition on a terminal event must
	// read as a permission failure, not a state failure.
	e := eventInState(StatusCancelled)

	_, err := e.Apply(TransitionAccept, Actor{ID: "owner-1", Role: RoleOwner}, "please", time.Now().UTC())

	require.ErrorIs(t, err, ErrNotPermitted)
	var stateErr *StateError
	assert.False(t, errors.As(err, &stateErr))
}

func TestApply_NoteRequired(t *testing.T) {
	for _, kind := range []TransitionKind{
		TransitionAccept, TransitionDecline,
		TransitionRequestCancellation, TransitionRequestCompletion,
	} {
		t.Run(string(kind), func(t *testing.T) {
			status := StatusSubmitted
			if kind == TransitionRequestCompletion {
				status = StatusInProgress
			}
			e := eventInState(status)

			_, err := e.Apply(kind, actorFor(kind), "", time.Now().UTC())

			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, e.ActivityLog)
		})
	}
}

func TestApply_CancellationFlow_Approved(t *testing.T) {
	e := eventInState(StatusInProgress)
	owner := Actor{ID: "owner-1", Role: RoleOwner}
	reviewer := Actor{ID: "rev-1", Role: RoleReviewer}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionRequestCancellation, owner, "venue flooded", now)
	require.NoError(t, err)
	require.NotNil(t, e.Pending)
	assert.Equal(t, RequestCancellation, e.Pending.Kind)
	assert.Equal(t, "owner-1", e.Pending.RequestedBy)
	assert.Equal(t, StatusInProgress, e.Status)

	action, err := e.Apply(TransitionApproveCancellation, reviewer, "understood", now)
	require.NoError(t, err)
	assert.Equal(t, ActionCancellationApproved, action)
	assert.Equal(t, StatusCancelled, e.Status)
	assert.Nil(t, e.Pending)
	require.NotNil(t, e.Decision)
	assert.Equal(t, OutcomeCancellationApproved, e.Decision.Outcome)
	require.Len(t, e.ActivityLog, 2)
}

func TestApply_CancellationFlow_Denied_StaysActive(t *testing.T) {
	e := eventInState(StatusInProgress)
	owner := Actor{ID: "owner-1", Role: RoleOwner}
	reviewer := Actor{ID: "rev-1", Role: RoleReviewer}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionRequestCancellation, owner, "cold feet", now)
	require.NoError(t, err)

	action, err := e.Apply(TransitionDenyCancellation, reviewer, "contract is signed", now)
	require.NoError(t, err)
	assert.Equal(t, ActionCancellationDenied, action)
	assert.Equal(t, StatusInProgress, e.Status)
	assert.Nil(t, e.Pending)
	require.NotNil(t, e.Decision)
	assert.Equal(t, OutcomeCancellationDenied, e.Decision.Outcome)
}

func TestApply_CompletionFlow_Accepted(t *testing.T) {
	e := eventInState(StatusInProgress)
	owner := Actor{ID: "owner-1", Role: RoleOwner}
	reviewer := Actor{ID: "rev-1", Role: RoleReviewer}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionRequestCompletion, reviewer, "all deliverables done", now)
	require.NoError(t, err)
	require.NotNil(t, e.Pending)
	assert.Equal(t, RequestCompletion, e.Pending.Kind)

	action, err := e.Apply(TransitionApproveCompletion, owner, "great work", now)
	require.NoError(t, err)
	assert.Equal(t, ActionCompletionAccepted, action)
	assert.Equal(t, StatusCompleted, e.Status)
	assert.Nil(t, e.Pending)
}

func TestApply_CompletionFlow_Rejected_StaysInProgress(t *testing.T) {
	e := eventInState(StatusInProgress)
	owner := Actor{ID: "owner-1", Role: RoleOwner}
	reviewer := Actor{ID: "rev-1", Role: RoleReviewer}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionRequestCompletion, reviewer, "done", now)
	require.NoError(t, err)

	action, err := e.Apply(TransitionRejectCompletion, owner, "catering was never confirmed", now)
	require.NoError(t, err)
	assert.Equal(t, ActionCompletionRejected, action)
	assert.Equal(t, StatusInProgress, e.Status)
	assert.Nil(t, e.Pending)

	// The slot is free again, so a second request can be opened.
	_, err = e.Apply(TransitionRequestCompletion, reviewer, "fixed now", now)
	require.NoError(t, err)
}

func TestApply_SecondRequestBlockedWhileOnePending(t *testing.T) {
	e := eventInState(StatusInProgress)
	owner := Actor{ID: "owner-1", Role: RoleOwner}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionRequestCancellation, owner, "reason", now)
	require.NoError(t, err)

	_, err = e.Apply(TransitionRequestCancellation, owner, "again", now)
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	require.Len(t, e.ActivityLog, 1)
}

func TestApply_RequesterCannotDecideOwnRequest(t *testing.T) {
	e := eventInState(StatusInProgress)
	reviewer := Actor{ID: "rev-1", Role: RoleReviewer}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionRequestCompletion, reviewer, "done", now)
	require.NoError(t, err)

	// Only the owner decides completion, and a reviewer id matching the
	// requester is refused outright.
	owner := Actor{ID: "rev-1", Role: RoleOwner}
	_, err = e.Apply(TransitionApproveCompletion, owner, "", now)
	require.ErrorIs(t, err, ErrNotPermitted)
}

func TestApply_CancellationDecidedByDifferentReviewer(t *testing.T) {
	// The deny path must reject the reviewer id that opened the request,
	// which cannot happen through the normal flow (owners open
	// cancellations) but is still enforced.
	e := eventInState(StatusInProgress)
	e.Pending = &PendingRequest{Kind: RequestCancellation, Note: "x", RequestedBy: "rev-1", RequestedAt: time.Now().UTC()}

	_, err := e.Apply(TransitionApproveCancellation, Actor{ID: "rev-1", Role: RoleReviewer}, "", time.Now().UTC())
	require.ErrorIs(t, err, ErrNotPermitted)

	_, err = e.Apply(TransitionApproveCancellation, Actor{ID: "rev-2", Role: RoleReviewer}, "", time.Now().UTC())
	require.NoError(t, err)
}

func TestApply_Expire(t *testing.T) {
	e := eventInState(StatusInProgress)
	e.Date = time.Now().UTC().Add(-48 * time.Hour)

	action, err := e.Apply(TransitionExpire, SystemActor, "", time.Now().UTC())

	require.NoError(t, err)
	assert.Equal(t, ActionAutoCancelled, action)
	assert.Equal(t, StatusCancelled, e.Status)
	assert.True(t, e.AutoCancelled)
	require.Len(t, e.ActivityLog, 1)
	assert.Equal(t, "system", e.ActivityLog[0].Actor)
}

func TestApply_ExpireClearsPending(t *testing.T) {
	e := eventInState(StatusInProgress)
	e.Date = time.Now().UTC().Add(-48 * time.Hour)
	owner := Actor{ID: "owner-1", Role: RoleOwner}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionRequestCancellation, owner, "reason", now)
	require.NoError(t, err)

	_, err = e.Apply(TransitionExpire, SystemActor, "", now)
	require.NoError(t, err)
	assert.Nil(t, e.Pending)
}

func TestApply_OnlySystemMayExpire(t *testing.T) {
	for _, actor := range []Actor{
		{ID: "owner-1", Role: RoleOwner},
		{ID: "rev-1", Role: RoleReviewer},
	} {
		e := eventInState(StatusSubmitted)
		e.Date = time.Now().UTC().Add(-48 * time.Hour)
		_, err := e.Apply(TransitionExpire, actor, "", time.Now().UTC())
		require.ErrorIs(t, err, ErrNotPermitted)
	}
}

func TestApply_ExpireRequiresPastDate(t *testing.T) {
	// The date guard lives in the transition table, so an event whose date
	// was pushed out between a sweep's listing and its re-read is refused on
	// the fresh value.
	e := eventInState(StatusInProgress)
	e.Date = time.Now().UTC().Add(30 * 24 * time.Hour)
	before := *e

	_, err := e.Apply(TransitionExpire, SystemActor, "", time.Now().UTC())

	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, before, *e)
	assert.Empty(t, e.ActivityLog)

	e.Date = time.Now().UTC().Add(-24 * time.Hour)
	_, err = e.Apply(TransitionExpire, SystemActor, "", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, e.Status)
}

// TestApply_StateTableClosure walks every status/transition pair with no
// pending request and checks that everything outside the allowed set is
// refused with a StateError and zero mutation. The fixture is future-dated,
// so expire is refused everywhere here; its date-gated acceptance is covered
// separately.
func TestApply_StateTableClosure(t *testing.T) {
	allowed := map[Status]map[TransitionKind]bool{
		StatusSubmitted: {
			TransitionAccept:              true,
			TransitionDecline:             true,
			TransitionRequestCancellation: true,
		},
		StatusInProgress: {
			TransitionRequestCancellation: true,
			TransitionRequestCompletion:   true,
		},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	for _, status := range AllStatuses {
		for _, kind := range AllTransitions {
			t.Run(string(status)+"/"+string(kind), func(t *testing.T) {
				e := eventInState(status)
				before := *e

				_, err := e.Apply(kind, actorFor(kind), "note", time.Now().UTC())

				if allowed[status][kind] {
					require.NoError(t, err)
					require.Len(t, e.ActivityLog, 1)
					return
				}

				var stateErr *StateError
				require.ErrorAs(t, err, &stateErr)
				assert.Equal(t, status, stateErr.Current)
				assert.Equal(t, before, *e)
				assert.Empty(t, e.ActivityLog)
			})
		}
	}
}

func TestAppendAudit_Order(t *testing.T) {
	e := eventInState(StatusSubmitted)
	owner := Actor{ID: "owner-1", Role: RoleOwner}
	reviewer := Actor{ID: "rev-1", Role: RoleReviewer}
	now := time.Now().UTC()

	_, err := e.Apply(TransitionAccept, reviewer, "ok", now)
	require.NoError(t, err)
	_, err = e.Apply(TransitionRequestCancellation, owner, "reason", now.Add(time.Minute))
	require.NoError(t, err)
	_, err = e.Apply(TransitionDenyCancellation, reviewer, "", now.Add(2*time.Minute))
	require.NoError(t, err)

	require.Len(t, e.ActivityLog, 3)
	assert.Equal(t, ActionAccepted, e.ActivityLog[0].Action)
	assert.Equal(t, ActionCancellationRequested, e.ActivityLog[1].Action)
	assert.Equal(t, ActionCancellationDenied, e.ActivityLog[2].Action)
	for i := 1; i < len(e.ActivityLog); i++ {
		assert.False(t, e.ActivityLog[i].Timestamp.Before(e.ActivityLog[i-1].Timestamp))
	}
}
