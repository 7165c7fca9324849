package handlers

import (
	"net/http"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	reactionService *services.ReactionService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(reactionService *services.ReactionService) *CommentHandler {
	return &CommentHandler{reactionService: reactionService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.AddComment)
	g.PUT("/posts/:id/comments/:commentId", h.UpdateComment)
	g.DELETE("/posts/:id/comments/:commentId", h.RemoveComment)
	g.POST("/posts/:id/comments/:commentId/like", h.ToggleCommentLike)
}

// AddComment appends a comment to a post and fans out notifications.
func (h *CommentHandler) AddComment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.reactionService.AddComment(c.Request().Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment edits an embedded comment's content.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.reactionService.UpdateComment(c.Request().Context(), c.Param("id"), c.Param("commentId"), userID, req.Content); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment updated"})
}

// RemoveComment deletes an embedded comment.
func (h *CommentHandler) RemoveComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if err := h.reactionService.RemoveComment(c.Request().Context(), c.Param("id"), c.Param("commentId"), userID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment removed"})
}

// ToggleCommentLike flips the viewer's membership in a comment's like-set.
func (h *CommentHandler) ToggleCommentLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	liked, count, err := h.reactionService.ToggleCommentLike(c.Request().Context(), c.Param("id"), c.Param("commentId"), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "like_count": count})
}
