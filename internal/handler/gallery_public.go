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

// GalleryHandler serves the public gallery listing with resolved image
// URLs.
type GalleryHandler struct {
	Gallery *service.GalleryService
}

func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{Gallery: gallery}
}

type galleryResp struct {
	ID        uint64    `json:"id"`
	Caption   string    `json:"caption"`
	Category  string    `json:"category"`
	Pictures  []string  `json:"pictures"`
	CreatedAt time.Time `json:"createdAt"`
}

func toGalleryResp(v service.GalleryView) galleryResp {
	return galleryResp{
		ID:        v.Entry.ID,
		Caption:   v.Entry.Caption,
		Category:  v.Entry.Category,
		Pictures:  v.PictureURLs,
		CreatedAt: v.Entry.CreatedAt,
	}
}

// List returns all gallery entries with signed picture URLs.
func (h *GalleryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	views, err := h.Gallery.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch gallery"})
	}
	out := make([]galleryResp, len(views))
	for i, v := range views {
		out[i] = toGalleryResp(v)
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one gallery entry by id.
func (h *GalleryHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gallery id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	v, err := h.Gallery.Get(ctx, id)
	switch {
	case errors.Is(err, repository.ErrGalleryNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch gallery"})
	}
	return c.JSON(http.StatusOK, toGalleryResp(v))
}
