package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/helenus/hotel-api/internal/mail"
	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/queue"
)

// BookingStore is the slice of the booking repository the booking service
// depends on.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
}

// Booking submission stages, in execution order. The outcome names the
// stage that failed so callers can tell "rejected before any side effect"
// apart from "some notifications went out but nothing was persisted" apart
// from "persisted".
const (
	StageValidate  = "validate"
	StageStaffMail = "staff_mail"
	StageGuestMail = "guest_mail"
	StagePersist   = "persist"
	StagePublish   = "publish"
)

// Outcome classifies how far a booking submission got.
type Outcome string

const (
	// OutcomeRejected means the submission failed before any side effect;
	// retrying is safe.
	OutcomeRejected Outcome = "rejected"
	// OutcomePartial means at least one side effect happened but the
	// booking was not persisted; blind retries risk duplicate
	// notifications, so callers should re-query before resubmitting.
	OutcomePartial Outcome = "partial"
	// OutcomeCommitted means the booking is durable. A failed best-effort
	// step after persistence (event publish) does not downgrade this.
	OutcomeCommitted Outcome = "committed"
)

// SubmitResult reports the outcome of a booking submission together with
// the stage that failed (empty on full success) and the persisted booking
// when one exists.
type SubmitResult struct {
	Outcome     Outcome
	FailedStage string
	Booking     *model.Booking
	Err         error
}

// RoomNotFoundError names the offending room reference in a rejected
// booking.
type RoomNotFoundError struct {
	RoomID uint64
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("room %d not found", e.RoomID)
}

// BookingService runs the booking submission sequence: resolve the user,
// validate the line items against the catalog, notify staff and guest by
// mail, persist the booking and publish the created event. The sequence is
// best effort with no compensation: a later failure does not undo an
// earlier step, which is why the result type spells out how far it got.
//
// Line item subtotals and the total amount are caller-supplied and stored
// verbatim. The server does not recompute guests x price x nights; pricing
// disputes are resolved by the front desk against the alert mail.
type BookingService struct {
	users    UserStore
	rooms    RoomStore
	bookings BookingStore
	mailer   mail.Mailer
	// publish is swappable for tests; defaults to PublishBookingCreated.
	publish func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// NewBookingService wires a BookingService.
func NewBookingService(users UserStore, rooms RoomStore, bookings BookingStore, mailer mail.Mailer) *BookingService {
	return &BookingService{
		users:    users,
		rooms:    rooms,
		bookings: bookings,
		mailer:   mailer,
		publish:  PublishBookingCreated,
	}
}

func rejected(stage string, err error) SubmitResult {
	return SubmitResult{Outcome: OutcomeRejected, FailedStage: stage, Err: err}
}

// Submit runs the booking sequence for one user. No availability or
// date-overlap check is performed against other bookings: two guests can
// book the same room for the same nights and both submissions succeed.
// Reconciling that is front-desk work by design of this surface.
func (s *BookingService) Submit(ctx context.Context, userID uint64, items []model.BookingItem, totalCents int64, specialRequests string) SubmitResult {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return rejected(StageValidate, err)
	}
	if !u.IsVerified {
		return rejected(StageValidate, ErrNotVerified)
	}
	if len(items) == 0 {
		return rejected(StageValidate, ErrEmptyBooking)
	}
	for i := range items {
		rm, err := s.rooms.GetByID(ctx, items[i].RoomID)
		if err != nil {
			return rejected(StageValidate, &RoomNotFoundError{RoomID: items[i].RoomID})
		}
		if items[i].RoomTitle == "" {
			items[i].RoomTitle = rm.Title
		}
	}

	b := &model.Booking{
		Reference:        uuid.NewString(),
		UserID:           u.ID,
		Items:            items,
		TotalAmountCents: totalCents,
		Status:           model.BookingPending,
		Payment:          model.PaymentInfo{Method: model.PaymentNone},
		SpecialRequests:  specialRequests,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.mailer.SendBookingAlert(u.FirstName, u.Email, b); err != nil {
		// Nothing sent, nothing stored; still rejected territory, but the
		// stage tells the caller the catalog checks passed.
		return rejected(StageStaffMail, err)
	}
	if err := s.mailer.SendBookingConfirmation(u.Email, u.FirstName, b); err != nil {
		// Staff already got an alert for a booking that will not exist.
		return SubmitResult{Outcome: OutcomePartial, FailedStage: StageGuestMail, Err: err}
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return SubmitResult{Outcome: OutcomePartial, FailedStage: StagePersist, Err: err}
	}

	titles := make([]string, len(b.Items))
	for i, it := range b.Items {
		titles[i] = it.RoomTitle
	}
	ev := queue.BookingCreatedEvent{
		BookingID:        b.ID,
		Reference:        b.Reference,
		UserID:           u.ID,
		GuestName:        u.FirstName,
		GuestEmail:       u.Email,
		RoomTitles:       titles,
		TotalAmountCents: b.TotalAmountCents,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
	if err := s.publish(ctx, ev); err != nil {
		log.Warn().Err(err).Uint64("booking_id", b.ID).Msg("booking event publish failed")
		return SubmitResult{Outcome: OutcomeCommitted, FailedStage: StagePublish, Booking: b, Err: err}
	}

	return SubmitResult{Outcome: OutcomeCommitted, Booking: b}
}

// ListForUser returns the bookings of one user, newest first.
func (s *BookingService) ListForUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}
