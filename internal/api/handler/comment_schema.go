package handler

import (
	"time"

	"github.com/inkwell/blog-api/internal/core/domain"
)

type commentRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body"  validate:"required,min=10"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Name:      c.Name,
		Email:     c.Email,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
