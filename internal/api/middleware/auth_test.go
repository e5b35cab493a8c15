package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
	"github.com/mercury-msp/helpdesk/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, role domain.Role) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubDenylist struct {
	revoked map[string]bool
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]bool)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	d.revoked[tokenID] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.revoked[tokenID], nil
}

func issueToken(t *testing.T, tokens ports.TokenService, user *domain.User) string {
	t.Helper()
	raw, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return raw
}

func runAuth(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "alice@example.com", Role: domain.RoleAdmin}
	tokens := service.NewTokenService("secret", time.Hour)
	mw := Auth(tokens, newStubUserRepo(user), newStubDenylist())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tokens, user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		got, ok := c.Get(ContextUserKey).(*domain.User)
		if !ok || got.ID != "user-1" {
			t.Fatalf("user not attached to context: %v", c.Get(ContextUserKey))
		}
		claims, ok := c.Get(ContextClaimsKey).(*ports.TokenClaims)
		if !ok || claims.TokenID == "" {
			t.Fatalf("claims not attached to context: %v", c.Get(ContextClaimsKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	mw := Auth(tokens, newStubUserRepo(), newStubDenylist())

	rec, called := runAuth(t, mw, "")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer header")
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	mw := Auth(tokens, newStubUserRepo(), newStubDenylist())

	rec, called := runAuth(t, mw, "Token abc")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	mw := Auth(tokens, newStubUserRepo(), newStubDenylist())

	rec, called := runAuth(t, mw, "Bearer not-a-token")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeletedUser(t *testing.T) {
	user := &domain.User{ID: "user-1", Role: domain.RoleClient}
	tokens := service.NewTokenService("secret", time.Hour)
	raw := issueToken(t, tokens, user)

	// The token is valid but the subject no longer exists.
	mw := Auth(tokens, newStubUserRepo(), newStubDenylist())
	rec, called := runAuth(t, mw, "Bearer "+raw)
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	user := &domain.User{ID: "user-1", Role: domain.RoleClient}
	tokens := service.NewTokenService("secret", time.Hour)
	raw := issueToken(t, tokens, user)

	claims, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("verifying token: %v", err)
	}
	denylist := newStubDenylist()
	if err := denylist.Revoke(context.Background(), claims.TokenID, claims.ExpiresAt); err != nil {
		t.Fatalf("revoking token: %v", err)
	}

	mw := Auth(tokens, newStubUserRepo(user), denylist)
	rec, called := runAuth(t, mw, "Bearer "+raw)
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
