package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/repository"
	"github.com/helenus/hotel-api/internal/service"
)

// BookingHandler serves booking submission and the caller's own booking
// history.  Both routes require an authenticated session.
type BookingHandler struct {
	Bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

type bookingItemReq struct {
	RoomID        uint64    `json:"roomId"`
	Title         string    `json:"title"`
	RoomType      string    `json:"roomType"`
	Guests        int       `json:"guests"`
	PricePerNight int64     `json:"pricePerNightCents"`
	TotalNights   int       `json:"totalNights"`
	Subtotal      int64     `json:"subtotalCents"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
}

type submitBookingReq struct {
	Rooms           []bookingItemReq `json:"rooms"`
	TotalAmount     int64            `json:"totalAmountCents"`
	SpecialRequests string           `json:"specialRequests"`
}

type bookingItemResp struct {
	RoomID        uint64    `json:"roomId"`
	Title         string    `json:"title"`
	RoomType      string    `json:"roomType"`
	Guests        int       `json:"guests"`
	PricePerNight int64     `json:"pricePerNightCents"`
	TotalNights   int       `json:"totalNights"`
	Subtotal      int64     `json:"subtotalCents"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
}

type bookingResp struct {
	ID              uint64            `json:"id"`
	Reference       string            `json:"reference"`
	Rooms           []bookingItemResp `json:"rooms"`
	TotalAmount     int64             `json:"totalAmountCents"`
	Status          string            `json:"status"`
	PaymentMethod   string            `json:"paymentMethod"`
	IsPaid          bool              `json:"isPaid"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func toBookingResp(b model.Booking) bookingResp {
	items := make([]bookingItemResp, len(b.Items))
	for i, it := range b.Items {
		items[i] = bookingItemResp{
			RoomID:        it.RoomID,
			Title:         it.RoomTitle,
			RoomType:      it.RoomType,
			Guests:        it.Guests,
			PricePerNight: it.PricePerNightCents,
			TotalNights:   it.TotalNights,
			Subtotal:      it.SubtotalCents,
			CheckInDate:   it.CheckIn,
			CheckOutDate:  it.CheckOut,
		}
	}
	return bookingResp{
		ID:              b.ID,
		Reference:       b.Reference,
		Rooms:           items,
		TotalAmount:     b.TotalAmountCents,
		Status:          b.Status,
		PaymentMethod:   b.Payment.Method,
		IsPaid:          b.Payment.IsPaid,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}

// Submit runs the booking workflow for the authenticated user.  Subtotals
// and the total are stored as supplied.
func (h *BookingHandler) Submit(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req submitBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	items := make([]model.BookingItem, len(req.Rooms))
	for i, r := range req.Rooms {
		items[i] = model.BookingItem{
			RoomID:             r.RoomID,
			RoomTitle:          r.Title,
			RoomType:           r.RoomType,
			Guests:             r.Guests,
			PricePerNightCents: r.PricePerNight,
			TotalNights:        r.TotalNights,
			SubtotalCents:      r.Subtotal,
			CheckIn:            r.CheckInDate,
			CheckOut:           r.CheckOutDate,
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	res := h.Bookings.Submit(ctx, userID, items, req.TotalAmount, req.SpecialRequests)
	if res.Outcome == service.OutcomeRejected {
		var rnf *service.RoomNotFoundError
		switch {
		case errors.Is(res.Err, repository.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "you must login before submitting a booking"})
		case errors.Is(res.Err, service.ErrNotVerified):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "please verify your email address first"})
		case errors.Is(res.Err, service.ErrEmptyBooking):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking must contain at least one room"})
		case errors.As(res.Err, &rnf):
			return c.JSON(http.StatusNotFound, echo.Map{"error": rnf.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error submitting booking"})
		}
	}
	if res.Outcome == service.OutcomePartial {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error submitting booking"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "room booked successfully",
		"reference": res.Booking.Reference,
	})
}

// ListMine returns the authenticated user's bookings, newest first.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListForUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch bookings"})
	}
	out := make([]bookingResp, len(bookings))
	for i, b := range bookings {
		out[i] = toBookingResp(b)
	}
	return c.JSON(http.StatusOK, out)
}
