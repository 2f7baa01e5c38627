package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comments nested under posts.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /api/v1/posts/:postId/comments.
//
// @Summary      Create a comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string          true  "Post ID"
// @Param        body    body      commentRequest  true  "Comment fields"
// @Success      201     {object}  commentResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /posts/{postId}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.CreateComment(c.Request().Context(), c.Param("postId"), ports.CommentInput{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// List handles GET /api/v1/posts/:postId/comments.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Param        postId    query     string  true   "Post ID"
// @Param        pageNo    query     int     false  "Page number (0-based)"
// @Param        pageSize  query     int     false  "Page size"
// @Success      200       {object}  pagedResponse[commentResponse]
// @Failure      404       {object}  errorResponse
// @Router       /posts/{postId}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	page, err := h.service.ListComments(c.Request().Context(), c.Param("postId"), pageQuery(c))
	if err != nil {
		return err
	}

	content := make([]commentResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, toCommentResponse(&page.Content[i]))
	}
	return c.JSON(http.StatusOK, pagedResponse[commentResponse]{
		Content:       content,
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Last:          page.Last,
	})
}

// Get handles GET /api/v1/posts/:postId/comments/:commentId.
//
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        postId     path      string  true  "Post ID"
// @Param        commentId  path      string  true  "Comment ID"
// @Success      200        {object}  commentResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /posts/{postId}/comments/{commentId} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.service.GetComment(c.Request().Context(), c.Param("postId"), c.Param("commentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Update handles PUT /api/v1/posts/:postId/comments/:commentId.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string          true  "Post ID"
// @Param        commentId  path      string          true  "Comment ID"
// @Param        body       body      commentRequest  true  "Comment fields"
// @Success      200        {object}  commentResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /posts/{postId}/comments/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.UpdateComment(c.Request().Context(), c.Param("postId"), c.Param("commentId"), ports.CommentInput{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /api/v1/posts/:postId/comments/:commentId.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string  true  "Post ID"
// @Param        commentId  path      string  true  "Comment ID"
// @Success      200        {object}  messageResponse
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /posts/{postId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteComment(c.Request().Context(), c.Param("postId"), c.Param("commentId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Comment deleted successfully!"})
}
