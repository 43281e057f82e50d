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

// RoomHandler serves the public room catalog with resolved image URLs.
type RoomHandler struct {
	Catalog *service.CatalogService
}

func NewRoomHandler(catalog *service.CatalogService) *RoomHandler {
	return &RoomHandler{Catalog: catalog}
}

// bedConfigResp mirrors one pricing/bed configuration in responses.
type bedConfigResp struct {
	RoomType     string `json:"roomType"`
	PriceCents   int64  `json:"priceCents"`
	NumberOfBeds int    `json:"numberOfBeds"`
	BedType      string `json:"bedType"`
	MaxPeople    int    `json:"maxPeople"`
}

// roomResp is a room record with storage keys replaced by signed URLs.
type roomResp struct {
	ID               uint64          `json:"id"`
	Title            string          `json:"title"`
	RoomNumber       string          `json:"roomNumber"`
	Description      string          `json:"description"`
	Amenities        []string        `json:"amenities"`
	Configs          []bedConfigResp `json:"configs"`
	Status           string          `json:"status"`
	StarRating       float64         `json:"starRating"`
	FrontViewPicture string          `json:"frontViewPicture"`
	Pictures         []string        `json:"pictures"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func toRoomResp(v service.RoomView) roomResp {
	configs := make([]bedConfigResp, len(v.Room.Configs))
	for i, cfg := range v.Room.Configs {
		configs[i] = bedConfigResp{
			RoomType:     cfg.RoomType,
			PriceCents:   cfg.PriceCents,
			NumberOfBeds: cfg.NumberOfBeds,
			BedType:      cfg.BedType,
			MaxPeople:    cfg.MaxPeople,
		}
	}
	return roomResp{
		ID:               v.Room.ID,
		Title:            v.Room.Title,
		RoomNumber:       v.Room.RoomNumber,
		Description:      v.Room.Description,
		Amenities:        v.Room.Amenities,
		Configs:          configs,
		Status:           v.Room.Status,
		StarRating:       v.Room.StarRating,
		FrontViewPicture: v.FrontViewURL,
		Pictures:         v.PictureURLs,
		CreatedAt:        v.Room.CreatedAt,
	}
}

// List returns every room with signed image URLs.  An empty catalog is a
// 404, which the booking frontend renders as "no rooms found".
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	views, err := h.Catalog.ListRooms(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch rooms"})
	}
	if len(views) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no room found"})
	}
	out := make([]roomResp, len(views))
	for i, v := range views {
		out[i] = toRoomResp(v)
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one room by id with signed image URLs.
func (h *RoomHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	v, err := h.Catalog.GetRoom(ctx, id)
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch room"})
	}
	return c.JSON(http.StatusOK, toRoomResp(v))
}
