package handlers

import (
	"net/http"
	"strconv"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user id stored by the JWT
// middleware, or 0 when the request is unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// httpError maps an application error onto the matching HTTP response.
func httpError(err error) error {
	if ae := apperr.As(err); ae != nil {
		return echo.NewHTTPError(ae.HTTPStatus, ae.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// pageParams reads page/limit query parameters, leaving range clamping to the
// service layer.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
