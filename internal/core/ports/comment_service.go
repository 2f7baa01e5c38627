package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// CommentInput carries the writable fields of a comment.
type CommentInput struct {
	Name  string
	Email string
	Body  string
}

// CommentService defines use-case operations for comments nested under posts.
// Every operation verifies the parent post exists; operations addressing a
// single comment also verify it belongs to that post.
type CommentService interface {
	CreateComment(ctx context.Context, postID string, in CommentInput) (*domain.Comment, error)
	GetComment(ctx context.Context, postID, commentID string) (*domain.Comment, error)
	ListComments(ctx context.Context, postID string, page PageQuery) (*Page[domain.Comment], error)
	UpdateComment(ctx context.Context, postID, commentID string, in CommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}
