package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/helenus/hotel-api/internal/repository"
	"github.com/helenus/hotel-api/internal/service"
)

// AdminGalleryHandler serves the administrative gallery CRUD.  Create and
// update take multipart form data like the room endpoints.
type AdminGalleryHandler struct {
	Gallery *service.GalleryService
}

func NewAdminGalleryHandler(gallery *service.GalleryService) *AdminGalleryHandler {
	return &AdminGalleryHandler{Gallery: gallery}
}

// Create handles POST post-gallery: caption, category and at least one
// picture file.
func (h *AdminGalleryHandler) Create(c echo.Context) error {
	caption := c.FormValue("caption")
	category := c.FormValue("category")
	if caption == "" || category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}

	pictures, err := readUploads(c, "pictures")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid multipart form"})
	}
	if len(pictures) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing images"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	entry, err := h.Gallery.Create(ctx, caption, category, pictures)
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add gallery"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "gallery added successfully", "id": entry.ID})
}

// Update handles PUT gallery/:id: replaces caption and category and
// recomputes the picture set from the keep-list plus any newly uploaded
// files.  Removed keys stay in the object store.
func (h *AdminGalleryHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gallery id"})
	}

	caption := c.FormValue("caption")
	category := c.FormValue("category")
	var keep []string
	if err := parseJSONField(c, "imagesToKeep", &keep); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid imagesToKeep"})
	}
	newPictures, err := readUploads(c, "pictures")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid multipart form"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	entry, err := h.Gallery.Update(ctx, id, caption, category, keep, newPictures)
	switch {
	case errors.Is(err, repository.ErrGalleryNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update gallery"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":       entry.ID,
		"caption":  entry.Caption,
		"category": entry.Category,
		"pictures": entry.Pictures,
	})
}

// Delete removes the gallery record only.  Stored pictures are left
// behind.
func (h *AdminGalleryHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gallery id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	err := h.Gallery.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrGalleryNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete gallery"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "gallery deleted"})
}
