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

type stubPostService struct {
	createFn func(ctx context.Context, in ports.PostInput) (*domain.Post, error)
	getFn    func(ctx context.Context, id string) (*domain.Post, error)
	listFn   func(ctx context.Context, page ports.PageQuery) (*ports.Page[domain.Post], error)
	updateFn func(ctx context.Context, id string, in ports.PostInput) (*domain.Post, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubPostService) CreatePost(ctx context.Context, in ports.PostInput) (*domain.Post, error) {
	return s.createFn(ctx, in)
}

func (s *stubPostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) ListPosts(ctx context.Context, page ports.PageQuery) (*ports.Page[domain.Post], error) {
	return s.listFn(ctx, page)
}

func (s *stubPostService) UpdatePost(ctx context.Context, id string, in ports.PostInput) (*domain.Post, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubPostService) DeletePost(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestPostHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, in ports.PostInput) (*domain.Post, error) {
			if in.Title != "First post" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Post{ID: "p1", Title: in.Title, Description: in.Description, Content: in.Content}, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"First post","description":"a longer description","content":"hello world"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

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
	if resp["id"] != "p1" || resp["title"] != "First post" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_Create_ShortDescription(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, in ports.PostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"First post","description":"short","content":"hello world"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		getFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostHandler_List_Envelope(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		listFn: func(ctx context.Context, page ports.PageQuery) (*ports.Page[domain.Post], error) {
			if page.PageNo != 1 || page.PageSize != 2 || page.SortBy != "title" || page.SortDir != "desc" {
				t.Fatalf("unexpected page query: %+v", page)
			}
			return &ports.Page[domain.Post]{
				Content:       []domain.Post{{ID: "p3"}, {ID: "p4"}},
				PageNo:        1,
				PageSize:      2,
				TotalElements: 5,
				TotalPages:    3,
				Last:          false,
			}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?pageNo=1&pageSize=2&sortBy=title&sortDir=desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalElements"] != float64(5) || resp["totalPages"] != float64(3) || resp["last"] != false {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	content, ok := resp["content"].([]any)
	if !ok || len(content) != 2 {
		t.Fatalf("unexpected content: %+v", resp["content"])
	}
}

func TestPostHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		updateFn: func(ctx context.Context, id string, in ports.PostInput) (*domain.Post, error) {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Post{ID: id, Title: in.Title, Description: in.Description, Content: in.Content}, nil
		},
	}
	handler := NewPostHandler(stub)

	body := strings.NewReader(`{"title":"Updated","description":"a longer description","content":"updated body"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/posts/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Post deleted successfully!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
