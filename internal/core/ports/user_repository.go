package ports

import (
	"context"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns users, optionally filtered by role when role is non-empty.
	List(ctx context.Context, role domain.Role) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
