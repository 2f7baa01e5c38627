package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

type postRequest struct {
	Title       string `json:"title"       validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=10"`
	Content     string `json:"content"     validate:"required"`
}

type postResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// pagedResponse is the list envelope shared by posts and comments.
type pagedResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNo        int   `json:"pageNo"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// pageQuery reads the shared pagination query parameters, applying the
// original defaults (pageNo=0, pageSize=10, sortBy=id, sortDir=asc).
func pageQuery(c echo.Context) ports.PageQuery {
	q := ports.PageQuery{
		PageNo:   intQuery(c, "pageNo", 0),
		PageSize: intQuery(c, "pageSize", 10),
		SortBy:   c.QueryParam("sortBy"),
		SortDir:  c.QueryParam("sortDir"),
	}
	if q.SortBy == "" {
		q.SortBy = "id"
	}
	if q.SortDir == "" {
		q.SortDir = "asc"
	}
	return q
}
