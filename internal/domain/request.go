package domain

import "time"

type RequestKind string

const (
	RequestCancellation RequestKind = "cancellation"
	RequestCompletion   RequestKind = "completion"
)

// PendingRequest is the single open request slot on an event. At most one
// request of either kind can be outstanding; the slot is cleared when the
// request is decided. RequestedBy is kept so the decider can be checked
// against the requester.
type PendingRequest struct {
	Kind        RequestKind `json:"kind"`
	Note        string      `json:"note"`
	RequestedBy string      `json:"requested_by"`
	RequestedAt time.Time   `json:"requested_at"`
}

type Outcome string

const (
	OutcomeAccepted             Outcome = "accepted"
	OutcomeDeclined             Outcome = "declined"
	OutcomeCancellationApproved Outcome = "cancellation_approved"
	OutcomeCancellationDenied   Outcome = "cancellation_denied"
	OutcomeCompletionAccepted   Outcome = "completion_accepted"
	OutcomeCompletionRejected   Outcome = "completion_rejected"
)

// Decision records the most recent resolution for read-only display. The
// full history lives in the activity log.
type Decision struct {
	Comment   string    `json:"comment"`
	DecidedBy string    `json:"decided_by"`
	DecidedAt time.Time `json:"decided_at"`
	Outcome   Outcome   `json:"outcome"`
}
