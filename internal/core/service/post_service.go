package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PostService implements CRUD over posts.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) CreatePost(ctx context.Context, in ports.PostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Msg("post created")
	return created, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, page ports.PageQuery) (*ports.Page[domain.Post], error) {
	page = normalizePage(page)

	posts, total, err := s.repo.Find(ctx, page)
	if err != nil {
		return nil, err
	}
	return buildPage(posts, total, page), nil
}

func (s *PostService) UpdatePost(ctx context.Context, id string, in ports.PostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Description = in.Description
	post.Content = in.Content
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	// Look up first so a missing post yields ErrPostNotFound, not a silent no-op.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(page ports.PageQuery) ports.PageQuery {
	if page.PageNo < 0 {
		page.PageNo = 0
	}
	if page.PageSize <= 0 {
		page.PageSize = defaultPageSize
	}
	if page.PageSize > maxPageSize {
		page.PageSize = maxPageSize
	}
	if page.SortBy == "" {
		page.SortBy = "created_at"
	}
	if page.SortDir != "desc" {
		page.SortDir = "asc"
	}
	return page
}

// buildPage assembles the shared paged envelope.
func buildPage[T any](content []T, total int64, page ports.PageQuery) *ports.Page[T] {
	totalPages := int((total + int64(page.PageSize) - 1) / int64(page.PageSize))
	return &ports.Page[T]{
		Content:       content,
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page.PageNo >= totalPages-1,
	}
}
