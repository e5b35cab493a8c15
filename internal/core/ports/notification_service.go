package ports

import (
	"context"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// NotificationInput is the DTO handed to the dispatcher for asynchronous
// delivery into a user's inbox.
type NotificationInput struct {
	UserID   string
	Title    string
	Message  string
	Audience domain.NotificationAudience
}

// Notifier enqueues a notification for asynchronous delivery. Implementations
// must preserve per-recipient ordering.
type Notifier interface {
	Notify(input NotificationInput)
}

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	UserID     string
	Audience   domain.NotificationAudience
	UnreadOnly bool
}

// NotificationService defines use-case operations for user notifications.
type NotificationService interface {
	List(ctx context.Context, filter NotificationFilter) ([]domain.Notification, error)
	Get(ctx context.Context, id string) (*domain.Notification, error)
	Create(ctx context.Context, input NotificationInput) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	List(ctx context.Context, filter NotificationFilter) ([]domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	Update(ctx context.Context, n *domain.Notification) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
}
