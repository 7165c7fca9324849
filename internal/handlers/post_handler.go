package handlers

import (
	"net/http"
	"strconv"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	contentService  *services.ContentService
	reactionService *services.ReactionService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(contentService *services.ContentService, reactionService *services.ReactionService) *PostHandler {
	return &PostHandler{contentService: contentService, reactionService: reactionService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/search", h.SearchPosts)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/share", h.SharePost)
	g.GET("/users/:id/posts", h.GetPostsByAuthor)
	g.GET("/feed", h.GetFeed)
}

// CreatePost creates a new post for the authenticated user.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.contentService.CreatePost(c.Request().Context(), userID, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost returns a single post with its embedded comments.
func (h *PostHandler) GetPost(c echo.Context) error {
	view, err := h.contentService.GetPost(c.Request().Context(), getUserIDFromContext(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// UpdatePost applies partial edits to an existing post.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.contentService.UpdatePost(c.Request().Context(), userID, c.Param("id"), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeletePost soft-deletes a post.
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if err := h.contentService.SoftDeletePost(c.Request().Context(), userID, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted"})
}

// SharePost records a share and notifies the post's author.
func (h *PostHandler) SharePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if err := h.reactionService.SharePost(c.Request().Context(), c.Param("id"), userID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post shared"})
}

// GetFeed returns the paginated feed visible to the authenticated user.
func (h *PostHandler) GetFeed(c echo.Context) error {
	page, limit := pageParams(c)
	feed, err := h.contentService.GetFeed(c.Request().Context(), getUserIDFromContext(c), page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, feed)
}

// SearchPosts runs a full-text search over post content and tags.
func (h *PostHandler) SearchPosts(c echo.Context) error {
	page, limit := pageParams(c)
	results, err := h.contentService.SearchPosts(c.Request().Context(), getUserIDFromContext(c), c.QueryParam("q"), page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, results)
}

// GetPostsByAuthor returns a user's posts, including private ones when the
// viewer is the author.
func (h *PostHandler) GetPostsByAuthor(c echo.Context) error {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, limit := pageParams(c)
	posts, err := h.contentService.GetPostsByAuthor(c.Request().Context(), getUserIDFromContext(c), uint(authorID), page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}
