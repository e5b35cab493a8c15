package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/api/middleware"
	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// currentUser extracts the identity resolved by the Auth middleware. Its
// absence means the middleware did not run on this route; reject rather than
// proceed unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return user, nil
}

// currentClaims extracts the verified token claims set by the Auth middleware.
func currentClaims(c echo.Context) (*ports.TokenClaims, error) {
	claims, ok := c.Get(middleware.ContextClaimsKey).(*ports.TokenClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return claims, nil
}
