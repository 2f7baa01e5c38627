package domain

import (
	"errors"
	"time"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrCommentMismatch = errors.New("comment does not belong to post")
)

// Comment is a reader comment attached to a single post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
