package ports

import (
	"context"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// CreateUserInput carries the fields needed to create a user account.
// Password is the initial plaintext; it is hashed before storage.
type CreateUserInput struct {
	Name     string
	Email    string
	Role     domain.Role
	Avatar   string
	Password string
}

// UpdateUserInput carries a partial user update. Nil fields are left as-is.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *domain.Role
	Avatar   *string
	Password *string
}

// UserService defines use-case operations for managing user accounts.
type UserService interface {
	List(ctx context.Context, role domain.Role) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// EnsureAdmin creates the bootstrap administrator account when no admin
	// exists yet. Called once at startup.
	EnsureAdmin(ctx context.Context, name, email, password string) error
}
