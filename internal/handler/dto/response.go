package dto

import (
	"time"

	"github.com/plandesk/plandesk/internal/domain"
)

type EventResponse struct {
	ID            string                `json:"id"`
	OwnerID       string                `json:"owner_id"`
	OwnerContact  string                `json:"owner_contact"`
	Name          string                `json:"name"`
	Type          string                `json:"type"`
	LocationType  string                `json:"location_type"`
	Description   string                `json:"description"`
	Date          string                `json:"date"`
	GuestCount    int                   `json:"guest_count"`
	Budget        string                `json:"budget"`
	Status        string                `json:"status"`
	Pending       *PendingResponse      `json:"pending,omitempty"`
	Decision      *DecisionResponse     `json:"decision,omitempty"`
	AutoCancelled bool                  `json:"auto_cancelled"`
	ActivityLog   []ActivityLogResponse `json:"activity_log"`
	Version       int64                 `json:"version"`
	CreatedAt     string                `json:"created_at"`
}

type PendingResponse struct {
	Kind        string `json:"kind"`
	Note        string `json:"note"`
	RequestedBy string `json:"requested_by"`
	RequestedAt string `json:"requested_at"`
}

type DecisionResponse struct {
	Comment   string `json:"comment"`
	DecidedBy string `json:"decided_by"`
	DecidedAt string `json:"decided_at"`
	Outcome   string `json:"outcome"`
}

type ActivityLogResponse struct {
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Note      string `json:"note"`
}

type SummaryResponse struct {
	Counts               map[string]int `json:"counts"`
	Total                int            `json:"total"`
	PendingCancellations int            `json:"pending_cancellations"`
	AwaitingReview       int            `json:"awaiting_review"`
}

type ErrorResponse struct {
	Error         string `json:"error"`
	CurrentStatus string `json:"current_status,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		OwnerContact:  e.OwnerContact,
		Name:          e.Name,
		Type:          string(e.Type),
		LocationType:  string(e.LocationType),
		Description:   e.Description,
		Date:          e.Date.Format("2006-01-02"),
		GuestCount:    e.GuestCount,
		Budget:        e.Budget.StringFixed(2),
		Status:        string(e.Status),
		AutoCancelled: e.AutoCancelled,
		ActivityLog:   make([]ActivityLogResponse, 0, len(e.ActivityLog)),
		Version:       e.Version,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}

	if e.Pending != nil {
		resp.Pending = &PendingResponse{
			Kind:        string(e.Pending.Kind),
			Note:        e.Pending.Note,
			RequestedBy: e.Pending.RequestedBy,
			RequestedAt: e.Pending.RequestedAt.Format(time.RFC3339),
		}
	}
	if e.Decision != nil {
		resp.Decision = &DecisionResponse{
			Comment:   e.Decision.Comment,
			DecidedBy: e.Decision.DecidedBy,
			DecidedAt: e.Decision.DecidedAt.Format(time.RFC3339),
			Outcome:   string(e.Decision.Outcome),
		}
	}
	for _, entry := range e.ActivityLog {
		resp.ActivityLog = append(resp.ActivityLog, ActivityLogResponse{
			Timestamp: entry.Timestamp.Format(time.RFC3339),
			Actor:     entry.Actor,
			Action:    string(entry.Action),
			Note:      entry.Note,
		})
	}

	return resp
}

func ToSummaryResponse(s domain.StatusSummary) SummaryResponse {
	counts := make(map[string]int, len(s.Counts))
	for status, count := range s.Counts {
		counts[string(status)] = count
	}
	return SummaryResponse{
		Counts:               counts,
		Total:                s.Total,
		PendingCancellations: s.PendingCancellations,
		AwaitingReview:       s.AwaitingReview,
	}
}
