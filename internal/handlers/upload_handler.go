package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/objectstore"
	"github.com/labstack/echo/v4"
)

// Uploads larger than this are rejected before touching the object store.
const maxUploadBytes = 10 << 20

// UploadHandler handles binary upload HTTP requests
type UploadHandler struct {
	store objectstore.Store
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store objectstore.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// RegisterUploadRoutes registers upload-related routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.Upload)
	g.DELETE("/uploads/:id", h.Delete)
}

// Upload stores a multipart file and returns its opaque url+id reference.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "A file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "File exceeds the upload size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read uploaded file")
	}

	obj, err := h.store.Store(c.Request().Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return httpError(storeError(err))
	}
	return c.JSON(http.StatusCreated, obj)
}

// Delete removes a previously stored object by id.
func (h *UploadHandler) Delete(c echo.Context) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(storeError(err))
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Object deleted"})
}

func storeError(err error) error {
	if errors.Is(err, objectstore.ErrDisabled) {
		return apperr.Unavailable("media uploads are not configured", err)
	}
	return apperr.Unavailable("object store request failed", err)
}
