package ports

import (
	"context"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// CreateClientInput carries the fields needed to register a client.
type CreateClientInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Type          domain.ClientType
}

// UpdateClientInput carries a partial client update. Nil fields are left as-is.
type UpdateClientInput struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	Type          *domain.ClientType
}

// ClientService defines use-case operations for serviced clients.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
}
