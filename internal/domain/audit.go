package domain

import "time"

type Action string

const (
	ActionCreated               Action = "Created"
	ActionUpdated               Action = "Updated"
	ActionAccepted              Action = "Accepted"
	ActionDeclined              Action = "Declined"
	ActionCancellationRequested Action = "Cancellation Requested"
	ActionCancellationApproved  Action = "Cancellation Approved"
	ActionCancellationDenied    Action = "Cancellation Denied"
	ActionCompletionRequested   Action = "Completion Requested"
	ActionCompletionAccepted    Action = "Completion Accepted"
	ActionCompletionRejected    Action = "Completion Rejected"
	ActionAutoCancelled         Action = "Auto Cancelled"
)

// AuditEntry is one line of the append-only activity log. Entries are never
// edited or reordered after insertion.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    Action    `json:"action"`
	Note      string    `json:"note"`
}

// AppendAudit adds one entry to the activity log. Callers must append in
// lockstep with the mutation the entry describes; a rejected operation
// appends nothing.
func (e *Event) AppendAudit(actor Actor, action Action, note string, at time.Time) {
	e.ActivityLog = append(e.ActivityLog, AuditEntry{
		Timestamp: at,
		Actor:     actor.ID,
		Action:    action,
		Note:      note,
	})
}
