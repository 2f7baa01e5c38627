package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

type stubCommentService struct {
	createFn func(ctx context.Context, postID string, in ports.CommentInput) (*domain.Comment, error)
	getFn    func(ctx context.Context, postID, commentID string) (*domain.Comment, error)
	listFn   func(ctx context.Context, postID string, page ports.PageQuery) (*ports.Page[domain.Comment], error)
	updateFn func(ctx context.Context, postID, commentID string, in ports.CommentInput) (*domain.Comment, error)
	deleteFn func(ctx context.Context, postID, commentID string) error
}

func (s *stubCommentService) CreateComment(ctx context.Context, postID string, in ports.CommentInput) (*domain.Comment, error) {
	return s.createFn(ctx, postID, in)
}

func (s *stubCommentService) GetComment(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	return s.getFn(ctx, postID, commentID)
}

func (s *stubCommentService) ListComments(ctx context.Context, postID string, page ports.PageQuery) (*ports.Page[domain.Comment], error) {
	return s.listFn(ctx, postID, page)
}

func (s *stubCommentService) UpdateComment(ctx context.Context, postID, commentID string, in ports.CommentInput) (*domain.Comment, error) {
	return s.updateFn(ctx, postID, commentID, in)
}

func (s *stubCommentService) DeleteComment(ctx context.Context, postID, commentID string) error {
	return s.deleteFn(ctx, postID, commentID)
}

func TestCommentHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		createFn: func(ctx context.Context, postID string, in ports.CommentInput) (*domain.Comment, error) {
			if postID != "p1" || in.Name != "Alice" {
				t.Fatalf("unexpected args: %s %+v", postID, in)
			}
			return &domain.Comment{ID: "c1", PostID: postID, Name: in.Name, Email: in.Email, Body: in.Body}, nil
		},
	}
	handler := NewCommentHandler(stub)

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","body":"a comment long enough"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/p1/comments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("postId")
	c.SetParamValues("p1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "c1" || resp["post_id"] != "p1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCommentHandler_Create_ShortBody(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		createFn: func(ctx context.Context, postID string, in ports.CommentInput) (*domain.Comment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCommentHandler(stub)

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","body":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/p1/comments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("postId")
	c.SetParamValues("p1")

	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCommentHandler_Get_WrongPost(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		getFn: func(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
			return nil, domain.ErrCommentMismatch
		},
	}
	handler := NewCommentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/p2/comments/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("postId", "commentId")
	c.SetParamValues("p2", "c1")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrCommentMismatch) {
		t.Fatalf("expected ErrCommentMismatch, got %v", err)
	}
}

func TestCommentHandler_List_ScopedToPost(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		listFn: func(ctx context.Context, postID string, page ports.PageQuery) (*ports.Page[domain.Comment], error) {
			if postID != "p1" {
				t.Fatalf("unexpected post id: %s", postID)
			}
			return &ports.Page[domain.Comment]{
				Content:       []domain.Comment{{ID: "c1", PostID: "p1"}},
				PageNo:        0,
				PageSize:      10,
				TotalElements: 1,
				TotalPages:    1,
				Last:          true,
			}, nil
		},
	}
	handler := NewCommentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/p1/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("postId")
	c.SetParamValues("p1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalElements"] != float64(1) || resp["last"] != true {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestCommentHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		deleteFn: func(ctx context.Context, postID, commentID string) error {
			if postID != "p1" || commentID != "c1" {
				t.Fatalf("unexpected args: %s %s", postID, commentID)
			}
			return nil
		},
	}
	handler := NewCommentHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/p1/comments/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("postId", "commentId")
	c.SetParamValues("p1", "c1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Comment deleted successfully!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
