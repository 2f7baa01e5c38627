package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
	"github.com/inkwell/blog-api/internal/core/token"
)

// LoginThrottle abstracts the attempt limiter (Redis). A throttle error must
// not block logins; callers fail open.
type LoginThrottle interface {
	Allow(ctx context.Context, subject string) (bool, error)
	Reset(ctx context.Context, subject string) error
}

// AuthService implements signup and login against the credential store.
type AuthService struct {
	repo       ports.AccountRepository
	issuer     *token.Issuer
	throttle   LoginThrottle       // optional
	audit      ports.AuditRecorder // optional
	signupRole string
	logger     zerolog.Logger
}

func NewAuthService(
	repo ports.AccountRepository,
	issuer *token.Issuer,
	throttle LoginThrottle,
	audit ports.AuditRecorder,
	signupRole string,
	logger zerolog.Logger,
) *AuthService {
	if signupRole == "" {
		signupRole = domain.RoleAdmin
	}
	return &AuthService{
		repo:       repo,
		issuer:     issuer,
		throttle:   throttle,
		audit:      audit,
		signupRole: signupRole,
		logger:     logger,
	}
}

// Login authenticates by username or email and returns a signed token.
// Unknown subject and wrong password both surface as ErrInvalidCredentials so
// the response never reveals which accounts exist.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	if usernameOrEmail == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, usernameOrEmail)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
		} else if !allowed {
			s.record(usernameOrEmail, domain.AuditLoginThrottled, "attempt limit reached")
			return "", domain.ErrTooManyAttempts
		}
	}

	account, err := s.repo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.record(usernameOrEmail, domain.AuditLoginFailed, "unknown account")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.record(usernameOrEmail, domain.AuditLoginFailed, "password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(account.Username)
	if err != nil {
		return "", err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, usernameOrEmail); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	s.record(account.Username, domain.AuditLoginSucceeded, "")
	s.logger.Info().Str("username", account.Username).Msg("login succeeded")
	return signed, nil
}

// Signup registers a new account carrying exactly one role, the configured
// signup role. The uniqueness pre-checks are a fast path only: the repository's
// unique indexes are the real guard, so a concurrent duplicate surfaces here as
// ErrUsernameTaken or ErrEmailTaken from Create.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return domain.ErrInvalidCredentials
	}

	if taken, err := s.repo.ExistsByUsername(ctx, in.Username); err != nil {
		return err
	} else if taken {
		s.record(in.Username, domain.AuditSignupRejected, "username taken")
		return domain.ErrUsernameTaken
	}
	if taken, err := s.repo.ExistsByEmail(ctx, in.Email); err != nil {
		return err
	} else if taken {
		s.record(in.Username, domain.AuditSignupRejected, "email taken")
		return domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Roles:        []string{s.signupRole},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken) {
			s.record(in.Username, domain.AuditSignupRejected, "duplicate insert")
		}
		return err
	}

	s.record(in.Username, domain.AuditSignupSucceeded, "")
	s.logger.Info().Str("username", in.Username).Str("role", s.signupRole).Msg("account registered")
	return nil
}

func (s *AuthService) record(actor, action, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Actor:     actor,
		Action:    action,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
