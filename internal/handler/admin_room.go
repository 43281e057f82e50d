package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/repository"
	"github.com/helenus/hotel-api/internal/service"
)

// AdminRoomHandler serves the administrative room CRUD.  Room metadata
// arrives as multipart form fields (amenities and configs as JSON-encoded
// strings, the way the admin frontend submits them) alongside the image
// files.
type AdminRoomHandler struct {
	Catalog *service.CatalogService
}

func NewAdminRoomHandler(catalog *service.CatalogService) *AdminRoomHandler {
	return &AdminRoomHandler{Catalog: catalog}
}

// parseJSONField decodes a JSON-encoded form value into dst.  An empty
// value leaves dst untouched.
func parseJSONField(c echo.Context, field string, dst any) error {
	raw := c.FormValue(field)
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

// Create handles POST create-room: metadata plus a front view image and at
// least one slideshow image.
func (h *AdminRoomHandler) Create(c echo.Context) error {
	rm := model.Room{
		Title:       c.FormValue("title"),
		RoomNumber:  c.FormValue("roomNumber"),
		Description: c.FormValue("description"),
		Status:      c.FormValue("status"),
	}
	if rm.Status == "" {
		rm.Status = model.RoomAvailable
	}
	if err := parseJSONField(c, "amenities", &rm.Amenities); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid amenities"})
	}
	if err := parseJSONField(c, "configs", &rm.Configs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid configs"})
	}

	pictures, err := readUploads(c, "pictures")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid multipart form"})
	}
	fronts, err := readUploads(c, "frontViewPicture")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid multipart form"})
	}
	if len(pictures) == 0 || len(fronts) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing images"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	err = h.Catalog.CreateRoom(ctx, &rm, pictures, fronts[0])
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrRoomNumberExists):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room number already exists"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create the room"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "room created successfully", "id": rm.ID})
}

// Update handles PUT room/:id: wholesale scalar replacement plus the
// keep-list picture reconciliation.  imagesToKeep names the storage keys
// that survive; keepFrontView=true retains the current front view unless a
// replacement file is supplied.
func (h *AdminRoomHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	patch := service.RoomPatch{
		Title:       c.FormValue("title"),
		RoomNumber:  c.FormValue("roomNumber"),
		Description: c.FormValue("description"),
		Status:      c.FormValue("status"),
	}
	if err := parseJSONField(c, "amenities", &patch.Amenities); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid amenities"})
	}
	if err := parseJSONField(c, "configs", &patch.Configs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid configs"})
	}

	var keep []string
	if err := parseJSONField(c, "imagesToKeep", &keep); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid imagesToKeep"})
	}
	keepFront := c.FormValue("keepFrontView") == "true"

	newPictures, err := readUploads(c, "pictures")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid multipart form"})
	}
	var newFront *service.ImageUpload
	if fronts, err := readUploads(c, "frontViewPicture"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid multipart form"})
	} else if len(fronts) > 0 {
		newFront = &fronts[0]
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	err = h.Catalog.UpdateRoom(ctx, id, patch, keep, keepFront, newPictures, newFront)
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room updated successfully"})
}

// Delete removes the room's stored images and then the record.  A storage
// failure aborts before the record is touched.
func (h *AdminRoomHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	err := h.Catalog.DeleteRoom(ctx, id)
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room and associated images deleted successfully"})
}
