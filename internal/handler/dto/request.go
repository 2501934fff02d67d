package dto

import "github.com/shopspring/decimal"

type CreateEventRequest struct {
	OwnerID      string          `json:"owner_id" binding:"required"`
	OwnerContact string          `json:"owner_contact" binding:"required"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	LocationType string          `json:"location_type"`
	Description  string          `json:"description"`
	Date         string          `json:"date" binding:"required"` // "2006-01-02"
	GuestCount   int             `json:"guest_count"`
	Budget       decimal.Decimal `json:"budget"`
}

type UpdateEventRequest struct {
	ActorID      string          `json:"actor_id" binding:"required"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	LocationType string          `json:"location_type"`
	Description  string          `json:"description"`
	Date         string          `json:"date" binding:"required"`
	GuestCount   int             `json:"guest_count"`
	Budget       decimal.Decimal `json:"budget"`
}

// Justification fields are deliberately unbound here: the engine owns the
// non-empty rule and reports it as a field-scoped validation error.

type CancellationRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
	Reason  string `json:"reason"`
}

type CompletionRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
	Notes      string `json:"notes"`
}

type ReviewRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
	Comment    string `json:"comment"`
}

type CancellationDecisionRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
	Approve    *bool  `json:"approve" binding:"required"`
	Comment    string `json:"comment"`
}

type CompletionDecisionRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
	Approve *bool  `json:"approve" binding:"required"`
	Comment string `json:"comment"`
}

// SeedEvent mirrors the persisted record; the seed path takes it as-is.
type SeedEvent struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id" binding:"required"`
	OwnerContact string          `json:"owner_contact"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	LocationType string          `json:"location_type"`
	Description  string          `json:"description"`
	Date         string          `json:"date" binding:"required"`
	GuestCount   int             `json:"guest_count"`
	Budget       decimal.Decimal `json:"budget"`
	Status       string          `json:"status"`
}

type SeedRequest struct {
	Events []SeedEvent `json:"events" binding:"required"`
}
