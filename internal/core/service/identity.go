package service

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// IdentityResolver rebuilds a request-scoped principal from a validated token
// subject. A lookup miss means the account no longer exists, which retires any
// still-unexpired tokens it issued.
type IdentityResolver struct {
	repo ports.AccountRepository
}

func NewIdentityResolver(repo ports.AccountRepository) *IdentityResolver {
	return &IdentityResolver{repo: repo}
}

// Resolve looks up the account behind the subject and returns a principal
// carrying its role set. Misses surface as domain.ErrAccountNotFound.
func (r *IdentityResolver) Resolve(ctx context.Context, subject string) (*domain.Principal, error) {
	account, err := r.repo.FindByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	return &domain.Principal{
		Username: account.Username,
		Roles:    account.Roles,
	}, nil
}
