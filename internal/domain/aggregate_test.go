package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyCollectionHasZeroBuckets(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Total)
	assert.Len(t, s.Counts, len(AllStatuses))
	for _, status := range AllStatuses {
		count, ok := s.Counts[status]
		assert.True(t, ok, string(status))
		assert.Equal(t, 0, count)
	}
}

func TestSummarize_CountsAndBadges(t *testing.T) {
	pendingCancel := eventInState(StatusInProgress)
	pendingCancel.Pending = &PendingRequest{Kind: RequestCancellation, RequestedBy: "owner-1", RequestedAt: time.Now().UTC()}

	pendingComplete := eventInState(StatusInProgress)
	pendingComplete.Pending = &PendingRequest{Kind: RequestCompletion, RequestedBy: "rev-1", RequestedAt: time.Now().UTC()}

	events := []*Event{
		eventInState(StatusSubmitted),
		eventInState(StatusSubmitted),
		pendingCancel,
		pendingComplete,
		eventInState(StatusCompleted),
		eventInState(StatusCancelled),
	}

	s := Summarize(events)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Counts[StatusSubmitted])
	assert.Equal(t, 2, s.Counts[StatusInProgress])
	assert.Equal(t, 1, s.Counts[StatusCompleted])
	assert.Equal(t, 1, s.Counts[StatusCancelled])
	assert.Equal(t, 1, s.PendingCancellations)
	assert.Equal(t, 2, s.AwaitingReview)
}

func TestSummarize_SubmittedWithPendingCancellationNotAwaitingReview(t *testing.T) {
	e := eventInState(StatusSubmitted)
	e.Pending = &PendingRequest{Kind: RequestCancellation, RequestedBy: "owner-1", RequestedAt: time.Now().UTC()}

	s := Summarize([]*Event{e})

	assert.Equal(t, 0, s.AwaitingReview)
	assert.Equal(t, 1, s.PendingCancellations)
}

func TestSummarize_Idempotent(t *testing.T) {
	events := []*Event{
		eventInState(StatusSubmitted),
		eventInState(StatusInProgress),
		eventInState(StatusCancelled),
	}

	first := Summarize(events)
	second := Summarize(events)

	assert.Equal(t, first, second)

	total := 0
	for _, c := range first.Counts {
		total += c
	}
	assert.Equal(t, first.Total, total)
}
