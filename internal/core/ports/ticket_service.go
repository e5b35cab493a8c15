package ports

import (
	"context"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// TicketFilter narrows ticket listings. Empty fields apply no filter.
type TicketFilter struct {
	ClientID    string
	AssignedTo  string
	SubmittedBy string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority
}

// CreateTicketInput carries the fields needed to open a service request.
type CreateTicketInput struct {
	ClientID    string
	DeviceID    string
	Title       string
	Description string
	Priority    domain.TicketPriority
	SubmittedBy string
}

// UpdateTicketInput carries a partial ticket update. Nil fields are left as-is.
type UpdateTicketInput struct {
	Title           *string
	Description     *string
	Status          *domain.TicketStatus
	Priority        *domain.TicketPriority
	DeviceID        *string
	ResolutionNotes *string
}

// TicketService defines use-case operations for service requests.
type TicketService interface {
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	GetByNumber(ctx context.Context, number string) (*domain.Ticket, error)
	Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error)
	Update(ctx context.Context, id string, input UpdateTicketInput) (*domain.Ticket, error)
	// Assign hands the ticket to a technician, stamps assigned_at, and moves
	// the status to "assigned".
	Assign(ctx context.Context, id, technicianID string) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
}

// TicketRepository defines persistence operations for service requests.
type TicketRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	FindByNumber(ctx context.Context, number string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
}
