package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/plandesk/plandesk/internal/domain"
	"github.com/plandesk/plandesk/internal/handler/dto"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, actor domain.Actor, input domain.UpdateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string, actor domain.Actor) (*domain.Event, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Event, error)
	Dashboard(ctx context.Context, actor domain.Actor) (domain.StatusSummary, error)
	Seed(ctx context.Context, events []*domain.Event) error
}

type WorkflowSvc interface {
	Accept(ctx context.Context, id, reviewerID, comment string) (*domain.Event, error)
	Decline(ctx context.Context, id, reviewerID, reason string) (*domain.Event, error)
	RequestCancellation(ctx context.Context, id, ownerID, reason string) (*domain.Event, error)
	DecideCancellation(ctx context.Context, id, reviewerID string, approve bool, comment string) (*domain.Event, error)
	RequestCompletion(ctx context.Context, id, reviewerID, notes string) (*domain.Event, error)
	DecideCompletion(ctx context.Context, id, ownerID string, approve bool, comment string) (*domain.Event, error)
}

type Handler struct {
	eventService    EventSvc
	workflowService WorkflowSvc
}

func NewHandler(eventService EventSvc, workflowService WorkflowSvc) *Handler {
	return &Handler{
		eventService:    eventService,
		workflowService: workflowService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateEventInput{
		OwnerID:      req.OwnerID,
		OwnerContact: req.OwnerContact,
		Name:         req.Name,
		Type:         domain.EventType(req.Type),
		LocationType: domain.LocationType(req.LocationType),
		Description:  req.Description,
		Date:         date,
		GuestCount:   req.GuestCount,
		Budget:       req.Budget,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	actor := domain.Actor{ID: req.ActorID, Role: domain.RoleOwner}
	input := domain.UpdateEventInput{
		Name:         req.Name,
		Type:         domain.EventType(req.Type),
		LocationType: domain.LocationType(req.LocationType),
		Description:  req.Description,
		Date:         date,
		GuestCount:   req.GuestCount,
		Budget:       req.Budget,
	}

	event, err := h.eventService.Update(c.Request.Context(), id, actor, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id, actorFromQuery(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListOwnerEvents(c *ginext.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "owner_id is required"})
		return
	}

	h.listEvents(c, domain.Actor{ID: ownerID, Role: domain.RoleOwner})
}

func (h *Handler) ListAllEvents(c *ginext.Context) {
	h.listEvents(c, domain.Actor{ID: c.Query("reviewer_id"), Role: domain.RoleReviewer})
}

func (h *Handler) listEvents(c *ginext.Context, actor domain.Actor) {
	events, err := h.eventService.List(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Dashboards

func (h *Handler) OwnerDashboard(c *ginext.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "owner_id is required"})
		return
	}

	h.dashboard(c, domain.Actor{ID: ownerID, Role: domain.RoleOwner})
}

func (h *Handler) ReviewerDashboard(c *ginext.Context) {
	h.dashboard(c, domain.Actor{ID: c.Query("reviewer_id"), Role: domain.RoleReviewer})
}

func (h *Handler) dashboard(c *ginext.Context, actor domain.Actor) {
	summary, err := h.eventService.Dashboard(c.Request.Context(), actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// Review workflow

func (h *Handler) AcceptSubmission(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflowService.Accept(c.Request.Context(), id, req.ReviewerID, req.Comment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeclineSubmission(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflowService.Decline(c.Request.Context(), id, req.ReviewerID, req.Comment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Cancellation flow

func (h *Handler) RequestCancellation(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.CancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflowService.RequestCancellation(c.Request.Context(), id, req.OwnerID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DecideCancellation(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.CancellationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflowService.DecideCancellation(
		c.Request.Context(), id, req.ReviewerID, *req.Approve, req.Comment,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Completion flow

func (h *Handler) RequestCompletion(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflowService.RequestCompletion(c.Request.Context(), id, req.ReviewerID, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DecideCompletion(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.CompletionDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflowService.DecideCompletion(
		c.Request.Context(), id, req.OwnerID, *req.Approve, req.Comment,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Seed data

func (h *Handler) SeedEvents(c *ginext.Context) {
	var req dto.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	events := make([]*domain.Event, 0, len(req.Events))
	for _, s := range req.Events {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		events = append(events, &domain.Event{
			ID:           s.ID,
			OwnerID:      s.OwnerID,
			OwnerContact: s.OwnerContact,
			Name:         s.Name,
			Type:         domain.EventType(s.Type),
			LocationType: domain.LocationType(s.LocationType),
			Description:  s.Description,
			Date:         date,
			GuestCount:   s.GuestCount,
			Budget:       s.Budget,
			Status:       domain.Status(s.Status),
		})
	}

	if err := h.eventService.Seed(c.Request.Context(), events); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"inserted": len(events)})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var stateErr *domain.StateError

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotPermitted):
		// Deliberately generic: no detail about why.
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrNotPermitted.Error()})

	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:         stateErr.Error(),
			CurrentStatus: string(stateErr.Current),
		})

	case errors.Is(err, domain.ErrStaleState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrStaleState.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func actorFromQuery(c *ginext.Context) domain.Actor {
	role := domain.RoleOwner
	if c.Query("role") == string(domain.RoleReviewer) {
		role = domain.RoleReviewer
	}
	return domain.Actor{ID: c.Query("actor_id"), Role: role}
}
