package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// PageQuery carries offset pagination and sorting for list endpoints.
type PageQuery struct {
	PageNo   int
	PageSize int
	SortBy   string
	SortDir  string // "asc" or "desc"
}

// PostRepository persists posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Find(ctx context.Context, page PageQuery) ([]domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
