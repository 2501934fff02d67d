package service

import (
	"context"

	"github.com/plandesk/plandesk/internal/domain"
)

// Accept moves a submitted event into progress. Reviewer only; the comment
// is required and lands in the activity log.
func (s *PlannerService) Accept(ctx context.Context, id, reviewerID, comment string) (*domain.Event, error) {
	reviewer := domain.Actor{ID: reviewerID, Role: domain.RoleReviewer}
	return s.applyTransition(ctx, id, reviewer, domain.TransitionAccept, comment)
}

// Decline terminates a submitted event. The reason is required and retained
// in both the decision record and the activity log.
func (s *PlannerService) Decline(ctx context.Context, id, reviewerID, reason string) (*domain.Event, error) {
	reviewer := domain.Actor{ID: reviewerID, Role: domain.RoleReviewer}
	return s.applyTransition(ctx, id, reviewer, domain.TransitionDecline, reason)
}
