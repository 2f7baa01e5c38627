package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/token"
)

// PrincipalKey is the echo context key the request gate binds the resolved
// principal under.
const PrincipalKey = "principal"

// TokenValidator verifies a raw bearer token and returns its subject.
type TokenValidator interface {
	Validate(raw string) (string, error)
}

// PrincipalResolver rebuilds a principal from a validated subject.
type PrincipalResolver interface {
	Resolve(ctx context.Context, subject string) (*domain.Principal, error)
}

// Authenticate is the request gate: it runs once per request ahead of all
// handlers and opportunistically binds a principal to the request context.
// It is fail-open — a missing, invalid, or orphaned token leaves the request
// anonymous and forwards it downstream; enforcement belongs to the access
// policy.
func Authenticate(tokens TokenValidator, identities PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get("Authorization"))
			if raw == "" {
				return next(c)
			}

			subject, err := tokens.Validate(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return next(c)
			}

			principal, err := identities.Resolve(c.Request().Context(), subject)
			if err != nil {
				// Valid token whose account no longer exists.
				metrics.TokenRejectionsTotal.WithLabelValues("account_not_found").Inc()
				return next(c)
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// Principal returns the principal bound by Authenticate, or nil for an
// anonymous request.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(PrincipalKey).(*domain.Principal)
	return p
}

// bearerToken extracts the token from a "Bearer <token>" header value.
// Anything else — absent header, another scheme — yields an empty string.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}
