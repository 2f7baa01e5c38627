package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, usernameOrEmail, password string) (string, error)
	signupFn func(ctx context.Context, in ports.SignupInput) error
}

func (s *stubAuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	return s.loginFn(ctx, usernameOrEmail, password)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) error {
	return s.signupFn(ctx, in)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, usernameOrEmail, password string) (string, error) {
			if usernameOrEmail != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", usernameOrEmail, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"usernameOrEmail":"alice","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, usernameOrEmail, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"usernameOrEmail":"alice","password":"wrong1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// Unknown account and wrong password must be indistinguishable to the caller.
func TestAuthHandler_Login_UnknownAccountSameAsWrongPassword(t *testing.T) {
	e := newTestEcho()
	responses := make([]string, 0, 2)

	for _, payload := range []string{
		`{"usernameOrEmail":"ghost","password":"secret1"}`,
		`{"usernameOrEmail":"alice","password":"wrong12"}`,
	} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, usernameOrEmail, password string) (string, error) {
				return "", domain.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = handler.Login(c)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		responses = append(responses, rec.Body.String())
	}

	if responses[0] != responses[1] {
		t.Fatalf("responses differ: %q vs %q", responses[0], responses[1])
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, usernameOrEmail, password string) (string, error) {
			return "", domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"usernameOrEmail":"alice","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, usernameOrEmail, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"usernameOrEmail":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			if in.Username != "alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Alice","username":"alice","email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User registered successfully!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_UsernameTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			return domain.ErrUsernameTaken
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Bob","username":"alice","email":"bob@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Username is already taken!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			return domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Bob","username":"bob","email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email is already taken!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Bob","username":"bob","email":"bob@example.com","password":"12345"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
