package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// AccountRepository is the credential store: it owns account identity,
// password digests, and role assignments.
//
// Create must enforce username/email uniqueness itself (a unique index or
// equivalent) and return domain.ErrUsernameTaken / domain.ErrEmailTaken on
// violation; callers may pre-check but must not rely on the pre-check.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
