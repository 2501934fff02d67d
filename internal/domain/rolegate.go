package domain

// CanPerform answers whether the actor's role permits kind on this event.
// It covers role, ownership and the requester-is-not-the-decider rule;
// state legality is the transition table's job.
func CanPerform(actor Actor, e *Event, kind TransitionKind) bool {
	switch kind {
	case TransitionAccept, TransitionDecline, TransitionRequestCompletion:
		return actor.Role == RoleReviewer
	case TransitionApproveCancellation, TransitionDenyCancellation:
		if actor.Role != RoleReviewer {
			return false
		}
		return e.Pending == nil || e.Pending.RequestedBy != actor.ID
	case TransitionRequestCancellation:
		return actor.Role == RoleOwner && actor.ID == e.OwnerID
	case TransitionApproveCompletion, TransitionRejectCompletion:
		if actor.Role != RoleOwner || actor.ID != e.OwnerID {
			return false
		}
		return e.Pending == nil || e.Pending.RequestedBy != actor.ID
	case TransitionExpire:
		return actor.Role == RoleSystem
	}
	return false
}

// CanEdit gates field edits. Terminal events are immutable for everyone,
// and an edit attempt on one fails authorization before any field is
// validated.
func CanEdit(actor Actor, e *Event) bool {
	if actor.Role != RoleOwner || actor.ID != e.OwnerID {
		return false
	}
	if e.Status.Terminal() {
		return false
	}
	return e.Pending == nil
}

// CanRead scopes visibility: the reviewer sees everything, an owner only
// their own events.
func CanRead(actor Actor, e *Event) bool {
	if actor.Role == RoleReviewer {
		return true
	}
	return actor.Role == RoleOwner && actor.ID == e.OwnerID
}
