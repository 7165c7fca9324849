package handlers

import (
	"net/http"
	"strconv"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userRepo    repositories.UserRepository
	followRepo  repositories.FollowRepository
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, authService *services.AuthService) *UserHandler {
	return &UserHandler{userRepo: userRepo, followRepo: followRepo, authService: authService}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMe)
	g.PUT("/users/me", h.UpdateMe)
	g.DELETE("/users/me", h.DeactivateMe)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:id", h.GetUser)
}

// GetMe returns the authenticated user's own profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	user, err := h.userRepo.GetUserByID(userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe applies partial profile updates for the authenticated user.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepo.GetUserByID(userID)
	if err != nil {
		return httpError(err)
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		user.Email = req.Email
		user.Verified = false
	}
	if err := h.userRepo.UpdateUser(user); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeactivateMe disables the authenticated user's account.
func (h *UserHandler) DeactivateMe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if err := h.authService.Deactivate(userID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Account deactivated"})
}

// GetUser returns a public profile with follow counts.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepo.GetUserByID(uint(id))
	if err != nil {
		return httpError(err)
	}

	followers, err := h.followRepo.GetFollowersCount(user.ID)
	if err != nil {
		return httpError(err)
	}
	following, err := h.followRepo.GetFollowingCount(user.ID)
	if err != nil {
		return httpError(err)
	}
	isFollowing, err := h.followRepo.IsFollowing(getUserIDFromContext(c), user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":            user.ToCompact(),
		"followers_count": followers,
		"following_count": following,
		"is_following":    isFollowing,
	})
}

// SearchUsers looks up active users by partial username or email.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query is required")
	}

	users, err := h.userRepo.SearchUsers(query)
	if err != nil {
		return httpError(err)
	}

	results := make([]models.UserCompact, len(users))
	for i := range users {
		results[i] = users[i].ToCompact()
	}
	return c.JSON(http.StatusOK, echo.Map{"users": results})
}
