package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/api/metrics"
	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// NotificationService implements per-user notification inboxes. It is also
// the delivery target of the queue dispatcher.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) List(ctx context.Context, filter ports.NotificationFilter) ([]domain.Notification, error) {
	return s.repo.List(ctx, filter)
}

func (s *NotificationService) Get(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NotificationService) Create(ctx context.Context, input ports.NotificationInput) (*domain.Notification, error) {
	if input.UserID == "" || input.Title == "" {
		return nil, domain.ErrInvalidInput
	}

	audience := input.Audience
	if audience == "" {
		audience = domain.NotifyUser
	}

	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Title:     input.Title,
		Message:   input.Message,
		Audience:  audience,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	metrics.NotificationsDeliveredTotal.WithLabelValues(string(n.Audience)).Inc()
	return n, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
