// Package token issues and validates the stateless bearer tokens that carry
// identity between requests. Tokens are HS256-signed JWTs holding only the
// subject and time bounds; nothing is persisted server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("token is malformed")
	ErrSignatureInvalid = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token is expired")
)

// Issuer creates and verifies signed tokens. The secret and validity window
// come from process configuration and are read-only after construction.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured validity window.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for the given subject, valid from now until now+ttl.
func (i *Issuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Validate checks the token signature and expiry and returns the embedded
// subject. Failures map to exactly one of ErrMalformed, ErrSignatureInvalid,
// or ErrExpired. No clock leeway is applied.
func (i *Issuer) Validate(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrSignatureInvalid
		default:
			return "", ErrMalformed
		}
	}
	if !parsed.Valid {
		return "", ErrSignatureInvalid
	}
	return claims.Subject, nil
}
