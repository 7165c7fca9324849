package handlers

import (
	"net/http"
	"strconv"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow-related HTTP requests
type FollowHandler struct {
	reactionService *services.ReactionService
	followRepo      repositories.FollowRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(reactionService *services.ReactionService, followRepo repositories.FollowRepository) *FollowHandler {
	return &FollowHandler{reactionService: reactionService, followRepo: followRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.Follow)
	g.DELETE("/users/:id/follow", h.Unfollow)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

func targetUserID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	return uint(id), nil
}

// Follow creates a follow edge toward the target user. Re-following is a
// no-op and raises no second notification.
func (h *FollowHandler) Follow(c echo.Context) error {
	targetID, err := targetUserID(c)
	if err != nil {
		return err
	}
	if err := h.reactionService.Follow(getUserIDFromContext(c), targetID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// Unfollow removes the follow edge toward the target user.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	targetID, err := targetUserID(c)
	if err != nil {
		return err
	}
	if err := h.reactionService.Unfollow(getUserIDFromContext(c), targetID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"following": false})
}

// GetFollowers lists the users following the target.
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	targetID, err := targetUserID(c)
	if err != nil {
		return err
	}
	users, err := h.followRepo.GetFollowers(targetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": compactUsers(users)})
}

// GetFollowing lists the users the target follows.
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	targetID, err := targetUserID(c)
	if err != nil {
		return err
	}
	users, err := h.followRepo.GetFollowing(targetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": compactUsers(users)})
}

func compactUsers(users []models.User) []models.UserCompact {
	out := make([]models.UserCompact, len(users))
	for i := range users {
		out[i] = users[i].ToCompact()
	}
	return out
}
