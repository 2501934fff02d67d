package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// AllStatuses is the closed set aggregation reports over.
var AllStatuses = []Status{StatusSubmitted, StatusInProgress, StatusCompleted, StatusCancelled}

var ActiveStatuses = []Status{StatusSubmitted, StatusInProgress}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type EventType string

const (
	EventTypeWedding    EventType = "wedding"
	EventTypeConference EventType = "conference"
	EventTypeBirthday   EventType = "birthday"
	EventTypeCorporate  EventType = "corporate"
	EventTypeGala       EventType = "gala"
)

var EventTypes = []EventType{
	EventTypeWedding, EventTypeConference, EventTypeBirthday,
	EventTypeCorporate, EventTypeGala,
}

type LocationType string

const (
	LocationCastle         LocationType = "castle"
	LocationHistoricAbbey  LocationType = "historic_abbey"
	LocationGardenEstate   LocationType = "garden_estate"
	LocationGrandBallroom  LocationType = "grand_ballroom"
	LocationRooftopTerrace LocationType = "rooftop_terrace"
)

// MinimumBudgets is the per-location budget floor, boundary inclusive.
var MinimumBudgets = map[LocationType]decimal.Decimal{
	LocationCastle:         decimal.NewFromInt(50000),
	LocationHistoricAbbey:  decimal.NewFromInt(55000),
	LocationGardenEstate:   decimal.NewFromInt(30000),
	LocationGrandBallroom:  decimal.NewFromInt(40000),
	LocationRooftopTerrace: decimal.NewFromInt(25000),
}

// Event is one planning request, exclusively owned by its creator. The
// reviewer acts on it but never owns it. Version guards optimistic updates:
// a write carries the version it was read at, and the store rejects the
// write if the row has moved on.
type Event struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	OwnerContact  string          `json:"owner_contact"`
	Name          string          `json:"name"`
	Type          EventType       `json:"type"`
	LocationType  LocationType    `json:"location_type"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	GuestCount    int             `json:"guest_count"`
	Budget        decimal.Decimal `json:"budget"`
	Status        Status          `json:"status"`
	Pending       *PendingRequest `json:"pending,omitempty"`
	Decision      *Decision       `json:"decision,omitempty"`
	AutoCancelled bool            `json:"auto_cancelled"`
	Seeded        bool            `json:"seeded"`
	ActivityLog   []AuditEntry    `json:"activity_log"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Expired reports whether the event date has passed while the event is
// still active. Comparison is calendar-day based, not instant based.
func (e *Event) Expired(now time.Time) bool {
	if e.Status.Terminal() {
		return false
	}
	return dateOnly(e.Date).Before(dateOnly(now))
}

type CreateEventInput struct {
	OwnerID      string
	OwnerContact string
	Name         string
	Type         EventType
	LocationType LocationType
	Description  string
	Date         time.Time
	GuestCount   int
	Budget       decimal.Decimal
}

// UpdateEventInput carries the owner-editable fields. Owner, status and
// request state are never touched by an edit.
type UpdateEventInput struct {
	Name         string
	Type         EventType
	LocationType LocationType
	Description  string
	Date         time.Time
	GuestCount   int
	Budget       decimal.Decimal
}

// Validate enforces the field rules shared by create and update.
func (in CreateEventInput) Validate(now time.Time) error {
	if in.OwnerID == "" {
		return fmt.Errorf("%w: owner_id is required", ErrValidation)
	}
	return validateFields(in.Name, in.Type, in.LocationType, in.Date, in.GuestCount, in.Budget, now)
}

func (in UpdateEventInput) Validate(now time.Time) error {
	return validateFields(in.Name, in.Type, in.LocationType, in.Date, in.GuestCount, in.Budget, now)
}

// ApplyUpdate applies an owner edit. Authorization is checked before the
// fields are validated, so an edit attempt on a terminal event reads as a
// permission failure even when the fields are also invalid. On any failure
// the event is left untouched.
func (e *Event) ApplyUpdate(actor Actor, in UpdateEventInput, now time.Time) error {
	if !CanEdit(actor, e) {
		return ErrNotPermitted
	}
	if err := in.Validate(now); err != nil {
		return err
	}

	e.Name = in.Name
	e.Type = in.Type
	e.LocationType = in.LocationType
	e.Description = in.Description
	e.Date = in.Date
	e.GuestCount = in.GuestCount
	e.Budget = in.Budget
	e.AppendAudit(actor, ActionUpdated, "", now)
	e.UpdatedAt = now

	return nil
}

func validateFields(name string, typ EventType, loc LocationType, date time.Time, guests int, budget decimal.Decimal, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !validEventType(typ) {
		return fmt.Errorf("%w: unknown event type %q", ErrValidation, typ)
	}
	minimum, ok := MinimumBudgets[loc]
	if !ok {
		return fmt.Errorf("%w: unknown location type %q", ErrValidation, loc)
	}
	if dateOnly(date).Before(dateOnly(now)) {
		return fmt.Errorf("%w: date must not be in the past", ErrValidation)
	}
	if guests <= 0 {
		return fmt.Errorf("%w: guest_count must be positive", ErrValidation)
	}
	if budget.LessThan(minimum) {
		return fmt.Errorf("%w: budget %s is below the %s minimum of %s",
			ErrValidation, budget.StringFixed(2), loc, minimum.StringFixed(2))
	}
	return nil
}

func validEventType(typ EventType) bool {
	for _, t := range EventTypes {
		if t == typ {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
