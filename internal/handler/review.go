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

// ReviewHandler serves review creation and listing, plus the
// administrative delete.
type ReviewHandler struct {
	Reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

type addReviewReq struct {
	RoomID  uint64  `json:"room"`
	UserID  uint64  `json:"user"`
	Comment string  `json:"comment"`
	Rating  float64 `json:"rating"`
}

type reviewResp struct {
	ID        uint64    `json:"id"`
	RoomID    uint64    `json:"room"`
	UserID    uint64    `json:"user"`
	Comment   string    `json:"comment"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName,omitempty"`
	UserEmail string    `json:"userEmail,omitempty"`
}

// Add persists a review and triggers the room's rating recomputation.
func (h *ReviewHandler) Add(c echo.Context) error {
	var req addReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomID == 0 || req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room and user are required"})
	}
	if req.Rating < 0 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 0 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	rv, err := h.Reviews.AddReview(ctx, req.RoomID, req.UserID, req.Comment, req.Rating)
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save review"})
	}

	return c.JSON(http.StatusCreated, reviewResp{
		ID:        rv.ID,
		RoomID:    rv.RoomID,
		UserID:    rv.UserID,
		Comment:   rv.Comment,
		Rating:    rv.Rating,
		CreatedAt: rv.CreatedAt,
	})
}

// ListForRoom returns the reviews of one room, newest first, with reviewer
// name and e-mail attached.
func (h *ReviewHandler) ListForRoom(c echo.Context) error {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	reviews, err := h.Reviews.ListForRoom(ctx, roomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reviews"})
	}
	out := make([]reviewResp, len(reviews))
	for i, rr := range reviews {
		out[i] = reviewResp{
			ID:        rr.Review.ID,
			RoomID:    rr.Review.RoomID,
			UserID:    rr.Review.UserID,
			Comment:   rr.Review.Comment,
			Rating:    rr.Review.Rating,
			CreatedAt: rr.Review.CreatedAt,
			UserName:  rr.ReviewerName,
			UserEmail: rr.ReviewerMail,
		}
	}
	return c.JSON(http.StatusOK, out)
}

// Delete removes one review by id.  Administrative; the room's aggregate
// rating is not recomputed on delete, matching the write path's
// aggregate-on-create-only behavior.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid review id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Reviews.Remove(ctx, id)
	switch {
	case errors.Is(err, repository.ErrReviewNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete review"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "review deleted"})
}
