package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/token"
)

type stubResolver struct {
	principals map[string]*domain.Principal
}

func (r *stubResolver) Resolve(_ context.Context, subject string) (*domain.Principal, error) {
	if p, ok := r.principals[subject]; ok {
		return p, nil
	}
	return nil, domain.ErrAccountNotFound
}

func newGateFixture(t *testing.T) (*token.Issuer, echo.MiddlewareFunc) {
	t.Helper()
	issuer := token.NewIssuer("secret", time.Hour)
	resolver := &stubResolver{principals: map[string]*domain.Principal{
		"alice": {Username: "alice", Roles: []string{domain.RoleAdmin}},
	}}
	return issuer, Authenticate(issuer, resolver)
}

func runGate(t *testing.T, mw echo.MiddlewareFunc, authorization string) *domain.Principal {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var bound *domain.Principal
	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		bound = Principal(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("gate returned error: %v", err)
	}
	if !called {
		t.Fatalf("gate must always forward the request")
	}
	return bound
}

func TestAuthenticate_BindsPrincipal(t *testing.T) {
	issuer, mw := newGateFixture(t)
	signed, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	principal := runGate(t, mw, "Bearer "+signed)
	if principal == nil {
		t.Fatalf("expected bound principal")
	}
	if principal.Username != "alice" || !principal.HasRole(domain.RoleAdmin) {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	_, mw := newGateFixture(t)
	if principal := runGate(t, mw, ""); principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
}

func TestAuthenticate_WrongSchemeIsAnonymous(t *testing.T) {
	_, mw := newGateFixture(t)
	if principal := runGate(t, mw, "Basic dXNlcjpwYXNz"); principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
}

func TestAuthenticate_InvalidTokenIsAnonymous(t *testing.T) {
	_, mw := newGateFixture(t)
	if principal := runGate(t, mw, "Bearer not-a-token"); principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
}

func TestAuthenticate_ForeignTokenIsAnonymous(t *testing.T) {
	_, mw := newGateFixture(t)

	foreign := token.NewIssuer("other-secret", time.Hour)
	signed, err := foreign.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if principal := runGate(t, mw, "Bearer "+signed); principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
}

func TestAuthenticate_DeletedAccountIsAnonymous(t *testing.T) {
	issuer, mw := newGateFixture(t)

	// Token is valid but the subject has no backing account.
	signed, err := issuer.Issue("ghost")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if principal := runGate(t, mw, "Bearer "+signed); principal != nil {
		t.Fatalf("expected anonymous request, got %+v", principal)
	}
}
