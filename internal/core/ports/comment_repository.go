package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// CommentRepository persists comments, always scoped to a post.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindByPost(ctx context.Context, postID string, page PageQuery) ([]domain.Comment, int64, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}
