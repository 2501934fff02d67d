package service

import (
	"context"

	"github.com/plandesk/plandesk/internal/domain"
)

// The dual-control flows: one actor opens a request, the other decides it.
// The requester can never be the decider; the role gate refuses
// self-resolution before the state machine is consulted.

func (s *PlannerService) RequestCancellation(ctx context.Context, id, ownerID, reason string) (*domain.Event, error) {
	owner := domain.Actor{ID: ownerID, Role: domain.RoleOwner}
	return s.applyTransition(ctx, id, owner, domain.TransitionRequestCancellation, reason)
}

func (s *PlannerService) DecideCancellation(ctx context.Context, id, reviewerID string, approve bool, comment string) (*domain.Event, error) {
	reviewer := domain.Actor{ID: reviewerID, Role: domain.RoleReviewer}
	kind := domain.TransitionDenyCancellation
	if approve {
		kind = domain.TransitionApproveCancellation
	}
	return s.applyTransition(ctx, id, reviewer, kind, comment)
}

func (s *PlannerService) RequestCompletion(ctx context.Context, id, reviewerID, notes string) (*domain.Event, error) {
	reviewer := domain.Actor{ID: reviewerID, Role: domain.RoleReviewer}
	return s.applyTransition(ctx, id, reviewer, domain.TransitionRequestCompletion, notes)
}

func (s *PlannerService) DecideCompletion(ctx context.Context, id, ownerID string, approve bool, comment string) (*domain.Event, error) {
	owner := domain.Actor{ID: ownerID, Role: domain.RoleOwner}
	kind := domain.TransitionRejectCompletion
	if approve {
		kind = domain.TransitionApproveCompletion
	}
	return s.applyTransition(ctx, id, owner, kind, comment)
}
