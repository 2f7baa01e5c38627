package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for posts. Domain errors propagate to the
// central HTTP error handler for status mapping.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/v1/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.PostInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List handles GET /api/v1/posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        pageNo    query     int     false  "Page number (0-based)"
// @Param        pageSize  query     int     false  "Page size"
// @Param        sortBy    query     string  false  "Sort field"
// @Param        sortDir   query     string  false  "Sort direction (asc|desc)"
// @Success      200       {object}  pagedResponse[postResponse]
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, err := h.service.ListPosts(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}

	content := make([]postResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, toPostResponse(&page.Content[i]))
	}
	return c.JSON(http.StatusOK, pagedResponse[postResponse]{
		Content:       content,
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Last:          page.Last,
	})
}

// Get handles GET /api/v1/posts/:id.
//
// @Summary      Get a post by ID
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Update handles PUT /api/v1/posts/:id.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post ID"
// @Param        body  body      postRequest  true  "Post fields"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.UpdatePost(c.Request().Context(), c.Param("id"), ports.PostInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /api/v1/posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted successfully!"})
}

// intQuery parses an integer query parameter, falling back on absence or junk.
func intQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
