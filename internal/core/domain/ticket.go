package domain

import "time"

// TicketStatus represents the lifecycle state of a service request.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketAssigned   TicketStatus = "assigned"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// OpenTicketStatuses are the states counted as "open work" on the dashboard.
var OpenTicketStatuses = []TicketStatus{TicketOpen, TicketAssigned, TicketInProgress}

// TicketPriority orders service requests for triage.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// Ticket is a service request raised against a client, optionally tied to a
// device and assigned to a technician. Number is the human-facing ticket
// identifier (TKT-XXXXXXXX); ID is the surrogate key.
type Ticket struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	Number          string         `json:"ticket_number" bson:"ticket_number"`
	ClientID        string         `json:"client_id" bson:"client_id"`
	DeviceID        string         `json:"device_id,omitempty" bson:"device_id,omitempty"`
	Title           string         `json:"title" bson:"title"`
	Description     string         `json:"description" bson:"description"`
	Status          TicketStatus   `json:"status" bson:"status"`
	Priority        TicketPriority `json:"priority" bson:"priority"`
	AssignedTo      string         `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	SubmittedBy     string         `json:"submitted_by" bson:"submitted_by"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" bson:"updated_at"`
	AssignedAt      *time.Time     `json:"assigned_at,omitempty" bson:"assigned_at,omitempty"`
	ResolutionNotes string         `json:"resolution_notes,omitempty" bson:"resolution_notes,omitempty"`
}
