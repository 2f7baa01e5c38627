package ports

import "context"

// SignupInput carries the registration fields.
type SignupInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// AuthService implements login and signup, the only operations that mutate or
// directly consult the credential store.
type AuthService interface {
	// Login authenticates by username or email and returns a signed token.
	// Unknown subject and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, usernameOrEmail, password string) (string, error)
	// Signup registers a new account with the default role. It returns no
	// token; the caller logs in separately.
	Signup(ctx context.Context, in SignupInput) error
}
