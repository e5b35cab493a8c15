package ports

import (
	"context"
	"time"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// AuthService implements the credential-based login flow and token revocation.
type AuthService interface {
	// Login verifies email/password and returns a signed access token together
	// with the authenticated user. Unknown email and wrong password are the
	// same domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token identified by tokenID until its own expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// TokenDenylist records revoked token IDs until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
