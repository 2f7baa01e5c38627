package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a published article.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
