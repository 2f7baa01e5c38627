package domain

import (
	"errors"
	"time"
)

// Role names are capability tags attached to accounts. Every account carries
// at least one role from signup onwards.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrAccountNotFound    = errors.New("account not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Account models a registered user. Username and email are unique; identity
// fields are immutable after signup.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the request-scoped identity derived from a validated token plus
// a credential store lookup. It lives for a single request and is never shared.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal carries the named capability.
func (p *Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}
