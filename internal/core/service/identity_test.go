package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inkwell/blog-api/internal/core/domain"
)

func TestIdentityResolver_Resolve(t *testing.T) {
	repo := newStubAccountRepo()
	_, err := repo.Create(context.Background(), &domain.Account{
		Username:  "alice",
		Email:     "alice@example.com",
		Roles:     []string{domain.RoleAdmin, domain.RoleUser},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}

	resolver := NewIdentityResolver(repo)
	principal, err := resolver.Resolve(context.Background(), "alice")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if principal.Username != "alice" {
		t.Fatalf("unexpected username %q", principal.Username)
	}
	if !principal.HasRole(domain.RoleAdmin) || !principal.HasRole(domain.RoleUser) {
		t.Fatalf("principal missing roles: %v", principal.Roles)
	}
	if principal.HasRole("ROLE_EDITOR") {
		t.Fatalf("unexpected role reported present")
	}
}

func TestIdentityResolver_AccountDeleted(t *testing.T) {
	repo := newStubAccountRepo()
	resolver := NewIdentityResolver(repo)

	// A token subject without a backing account resolves to nothing: deleting
	// an account retires its outstanding tokens by lookup failure.
	if _, err := resolver.Resolve(context.Background(), "ghost"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
