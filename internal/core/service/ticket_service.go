package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/api/metrics"
	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// TicketService implements the service request workflow.
type TicketService struct {
	repo     ports.TicketRepository
	clients  ports.ClientRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewTicketService(repo ports.TicketRepository, clients ports.ClientRepository, notifier ports.Notifier, logger zerolog.Logger) *TicketService {
	return &TicketService{repo: repo, clients: clients, notifier: notifier, logger: logger}
}

func (s *TicketService) List(ctx context.Context, filter ports.TicketFilter) ([]domain.Ticket, error) {
	return s.repo.List(ctx, filter)
}

func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TicketService) GetByNumber(ctx context.Context, number string) (*domain.Ticket, error) {
	return s.repo.FindByNumber(ctx, number)
}

func (s *TicketService) Create(ctx context.Context, input ports.CreateTicketInput) (*domain.Ticket, error) {
	if input.ClientID == "" || input.Title == "" || input.SubmittedBy == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:          uuid.NewString(),
		Number:      generateTicketNumber(),
		ClientID:    input.ClientID,
		DeviceID:    input.DeviceID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TicketOpen,
		Priority:    priority,
		SubmittedBy: input.SubmittedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	metrics.TicketsCreatedTotal.WithLabelValues(string(ticket.Priority)).Inc()
	s.logger.Info().Str("ticket_number", ticket.Number).Str("client_id", ticket.ClientID).Msg("ticket opened")

	return ticket, nil
}

func (s *TicketService) Update(ctx context.Context, id string, input ports.UpdateTicketInput) (*domain.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasResolved := ticket.Status == domain.TicketResolved

	if input.Title != nil {
		ticket.Title = *input.Title
	}
	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}
	if input.DeviceID != nil {
		ticket.DeviceID = *input.DeviceID
	}
	if input.ResolutionNotes != nil {
		ticket.ResolutionNotes = *input.ResolutionNotes
	}
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if !wasResolved && ticket.Status == domain.TicketResolved {
		s.notifier.Notify(ports.NotificationInput{
			UserID:   ticket.SubmittedBy,
			Title:    "Ticket resolved",
			Message:  fmt.Sprintf("Ticket %s (%s) has been resolved.", ticket.Number, ticket.Title),
			Audience: domain.NotifyUser,
		})
	}
	return ticket, nil
}

// Assign hands the ticket to a technician, stamps assigned_at, flips the
// status to "assigned", and notifies the technician.
func (s *TicketService) Assign(ctx context.Context, id, technicianID string) (*domain.Ticket, error) {
	if technicianID == "" {
		return nil, domain.ErrInvalidInput
	}

	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ticket.AssignedTo = technicianID
	ticket.AssignedAt = &now
	ticket.Status = domain.TicketAssigned
	ticket.UpdatedAt = now

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		UserID:   technicianID,
		Title:    "Ticket assigned",
		Message:  fmt.Sprintf("Ticket %s (%s) has been assigned to you.", ticket.Number, ticket.Title),
		Audience: domain.NotifyUser,
	})
	s.logger.Info().Str("ticket_number", ticket.Number).Str("technician_id", technicianID).Msg("ticket assigned")

	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// generateTicketNumber returns a human-facing ticket identifier in the format
// TKT-XXXXXXXX (8 random hex digits).
func generateTicketNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("TKT-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("TKT-%08X", b)
}
