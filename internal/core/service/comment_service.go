package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// CommentService implements CRUD over comments nested under posts.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, logger: logger}
}

func (s *CommentService) CreateComment(ctx context.Context, postID string, in ports.CommentInput) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		PostID:    postID,
		Name:      in.Name,
		Email:     in.Email,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		s.logger.Error().Err(err).Str("post_id", postID).Msg("failed to create comment")
		return nil, err
	}

	s.logger.Info().Str("post_id", postID).Str("comment_id", created.ID).Msg("comment created")
	return created, nil
}

func (s *CommentService) GetComment(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	return s.findOwned(ctx, postID, commentID)
}

func (s *CommentService) ListComments(ctx context.Context, postID string, page ports.PageQuery) (*ports.Page[domain.Comment], error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	page = normalizePage(page)
	comments, total, err := s.comments.FindByPost(ctx, postID, page)
	if err != nil {
		return nil, err
	}
	return buildPage(comments, total, page), nil
}

func (s *CommentService) UpdateComment(ctx context.Context, postID, commentID string, in ports.CommentInput) (*domain.Comment, error) {
	comment, err := s.findOwned(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Name = in.Name
	comment.Email = in.Email
	comment.Body = in.Body
	comment.UpdatedAt = time.Now().UTC()

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID string) error {
	if _, err := s.findOwned(ctx, postID, commentID); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", postID).Str("comment_id", commentID).Msg("comment deleted")
	return nil
}

// findOwned fetches a comment after verifying the parent post exists and the
// comment actually belongs to it.
func (s *CommentService) findOwned(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, domain.ErrCommentMismatch
	}
	return comment, nil
}
