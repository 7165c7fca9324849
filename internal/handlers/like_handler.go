package handlers

import (
	"net/http"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles post like HTTP requests
type LikeHandler struct {
	reactionService *services.ReactionService
	contentService  *services.ContentService
	likeRepo        repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(reactionService *services.ReactionService, contentService *services.ContentService, likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{reactionService: reactionService, contentService: contentService, likeRepo: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost)
	g.DELETE("/posts/:id/like", h.UnlikePost)
	g.POST("/posts/:id/like/toggle", h.ToggleLike)
	g.GET("/users/me/likes", h.GetLikedPosts)
}

// LikePost adds the viewer to a post's like-set. Repeat calls are no-ops.
func (h *LikeHandler) LikePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	count, err := h.reactionService.LikePost(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": true, "like_count": count})
}

// UnlikePost removes the viewer from a post's like-set.
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	count, err := h.reactionService.UnlikePost(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": false, "like_count": count})
}

// ToggleLike flips the viewer's like-set membership.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	liked, count, err := h.reactionService.ToggleLike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "like_count": count})
}

// GetLikedPosts lists the posts the viewer has liked, most recent first.
func (h *LikeHandler) GetLikedPosts(c echo.Context) error {
	userID := getUserIDFromContext(c)

	ids, err := h.likeRepo.GetLikedPostIDs(userID)
	if err != nil {
		return httpError(err)
	}

	posts, err := h.contentService.GetPostsByIDs(c.Request().Context(), userID, ids)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}
