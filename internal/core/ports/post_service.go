package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// PostInput carries the writable fields of a post.
type PostInput struct {
	Title       string
	Description string
	Content     string
}

// Page is the offset-paged result envelope shared by list endpoints.
type Page[T any] struct {
	Content       []T
	PageNo        int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

// PostService defines use-case operations for posts.
type PostService interface {
	CreatePost(ctx context.Context, in PostInput) (*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	ListPosts(ctx context.Context, page PageQuery) (*Page[domain.Post], error)
	UpdatePost(ctx context.Context, id string, in PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, id string) error
}
