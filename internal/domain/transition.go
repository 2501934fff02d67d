package domain

import (
	"fmt"
	"time"
)

type TransitionKind string

const (
	TransitionAccept              TransitionKind = "accept"
	TransitionDecline             TransitionKind = "decline"
	TransitionRequestCancellation TransitionKind = "request_cancellation"
	TransitionApproveCancellation TransitionKind = "approve_cancellation"
	TransitionDenyCancellation    TransitionKind = "deny_cancellation"
	TransitionRequestCompletion   TransitionKind = "request_completion"
	TransitionApproveCompletion   TransitionKind = "approve_completion"
	TransitionRejectCompletion    TransitionKind = "reject_completion"
	TransitionExpire              TransitionKind = "expire"
)

// AllTransitions exists for exhaustive checks in tests.
var AllTransitions = []TransitionKind{
	TransitionAccept, TransitionDecline,
	TransitionRequestCancellation, TransitionApproveCancellation, TransitionDenyCancellation,
	TransitionRequestCompletion, TransitionApproveCompletion, TransitionRejectCompletion,
	TransitionExpire,
}

// Apply validates kind against the actor and the event's current state and,
// if legal, applies the transition together with exactly one activity log
// entry. Checks run in a fixed order: authorization, then state legality,
// then note validation. On any failure the event is left untouched.
func (e *Event) Apply(kind TransitionKind, actor Actor, note string, now time.Time) (Action, error) {
	if !CanPerform(actor, e, kind) {
		return "", ErrNotPermitted
	}
	if err := e.transitionAllowed(kind, now); err != nil {
		return "", err
	}
	if requiresNote(kind) && note == "" {
		return "", fmt.Errorf("%w: a justification is required", ErrValidation)
	}

	var action Action
	switch kind {
	case TransitionAccept:
		e.Status = StatusInProgress
		e.Decision = &Decision{Comment: note, DecidedBy: actor.ID, DecidedAt: now, Outcome: OutcomeAccepted}
		action = ActionAccepted
	case TransitionDecline:
		e.Status = StatusCancelled
		e.Pending = nil
		e.Decision = &Decision{Comment: note, DecidedBy: actor.ID, DecidedAt: now, Outcome: OutcomeDeclined}
		action = ActionDeclined
	case TransitionRequestCancellation:
		e.Pending = &PendingRequest{Kind: RequestCancellation, Note: note, RequestedBy: actor.ID, RequestedAt: now}
		action = ActionCancellationRequested
	case TransitionApproveCancellation:
		e.Status = StatusCancelled
		e.Pending = nil
		e.Decision = &Decision{Comment: note, DecidedBy: actor.ID, DecidedAt: now, Outcome: OutcomeCancellationApproved}
		action = ActionCancellationApproved
	case TransitionDenyCancellation:
		e.Pending = nil
		e.Decision = &Decision{Comment: note, DecidedBy: actor.ID, DecidedAt: now, Outcome: OutcomeCancellationDenied}
		action = ActionCancellationDenied
	case TransitionRequestCompletion:
		e.Pending = &PendingRequest{Kind: RequestCompletion, Note: note, RequestedBy: actor.ID, RequestedAt: now}
		action = ActionCompletionRequested
	case TransitionApproveCompletion:
		e.Status = StatusCompleted
		e.Pending = nil
		e.Decision = &Decision{Comment: note, DecidedBy: actor.ID, DecidedAt: now, Outcome: OutcomeCompletionAccepted}
		action = ActionCompletionAccepted
	case TransitionRejectCompletion:
		e.Pending = nil
		e.Decision = &Decision{Comment: note, DecidedBy: actor.ID, DecidedAt: now, Outcome: OutcomeCompletionRejected}
		action = ActionCompletionRejected
	case TransitionExpire:
		e.Status = StatusCancelled
		e.Pending = nil
		e.AutoCancelled = true
		action = ActionAutoCancelled
	}

	e.AppendAudit(actor, action, note, now)
	e.UpdatedAt = now

	return action, nil
}

// transitionAllowed is the state machine table. Anything it does not
// explicitly allow is refused with the event's current status attached.
// Expire carries its date precondition here so it is re-evaluated against
// the freshly read row, not the snapshot the sweep listed.
func (e *Event) transitionAllowed(kind TransitionKind, now time.Time) error {
	ok := false
	switch kind {
	case TransitionAccept, TransitionDecline:
		ok = e.Status == StatusSubmitted
	case TransitionRequestCancellation:
		ok = !e.Status.Terminal() && e.Pending == nil
	case TransitionApproveCancellation, TransitionDenyCancellation:
		ok = e.Pending != nil && e.Pending.Kind == RequestCancellation
	case TransitionRequestCompletion:
		ok = e.Status == StatusInProgress && e.Pending == nil
	case TransitionApproveCompletion, TransitionRejectCompletion:
		ok = e.Status == StatusInProgress && e.Pending != nil && e.Pending.Kind == RequestCompletion
	case TransitionExpire:
		ok = e.Expired(now)
	}
	if !ok {
		return &StateError{Current: e.Status}
	}
	return nil
}

func requiresNote(kind TransitionKind) bool {
	switch kind {
	case TransitionAccept, TransitionDecline, TransitionRequestCancellation, TransitionRequestCompletion:
		return true
	}
	return false
}
