package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_AuthErrorsShareOneShape(t *testing.T) {
	for _, err := range []error{domain.ErrInvalidCredentials, domain.ErrUnauthenticated} {
		rec := render(t, err)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", err, rec.Code)
		}
		if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
			t.Fatalf("%v: expected WWW-Authenticate: Bearer header", err)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["error"] != "unauthenticated" {
			t.Fatalf("expected opaque message, got %q", resp["error"])
		}
	}
}

func TestErrorHandler_Forbidden(t *testing.T) {
	rec := render(t, domain.ErrForbidden)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "" {
		t.Fatalf("403 must not carry a Bearer challenge")
	}
}

func TestErrorHandler_NotFound(t *testing.T) {
	for _, err := range []error{
		domain.ErrUserNotFound,
		domain.ErrClientNotFound,
		domain.ErrTicketNotFound,
		domain.ErrNotificationNotFound,
	} {
		if rec := render(t, err); rec.Code != http.StatusNotFound {
			t.Fatalf("%v: expected 404, got %d", err, rec.Code)
		}
	}
}

func TestErrorHandler_Conflict(t *testing.T) {
	for _, err := range []error{domain.ErrEmailTaken, domain.ErrAssetTagTaken} {
		if rec := render(t, err); rec.Code != http.StatusConflict {
			t.Fatalf("%v: expected 409, got %d", err, rec.Code)
		}
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := render(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
