package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/api/metrics"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// Context keys set by Auth on success.
const (
	ContextUserKey   = "user"
	ContextClaimsKey = "token_claims"
)

// Auth is the gate in front of every protected route. It extracts the bearer
// token, verifies it, rejects revoked token ids, and resolves the subject to
// a live user record. Every failure surfaces as the same 401 with a Bearer
// challenge; the caller never learns which step broke. On success the
// resolved user and claims are attached to the echo context.
func Auth(tokens ports.TokenService, users ports.UserRepository, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthenticated(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated(c)
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return unauthenticated(c)
			}

			if denylist != nil && claims.TokenID != "" {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil || revoked {
					return unauthenticated(c)
				}
			}

			// A token can outlive its subject; a deleted user must look
			// exactly like a bad token.
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return unauthenticated(c)
			}

			c.Set(ContextUserKey, user)
			c.Set(ContextClaimsKey, claims)

			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
}
