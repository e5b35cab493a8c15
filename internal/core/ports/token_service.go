package ports

import (
	"time"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// TokenClaims is the verified content of an access token.
type TokenClaims struct {
	UserID    string
	Role      domain.Role
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed bearer tokens. Verify collapses
// every failure (bad signature, wrong algorithm, malformed payload, missing
// subject, expired) into domain.ErrUnauthenticated so callers cannot build an
// oracle from the distinction.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(raw string) (*TokenClaims, error)
}
