package model

import "time"

// Booking lifecycle states.  Only "pending" is reachable from the booking
// endpoint; the later transitions are administrative actions.
const (
    BookingPending   = "pending"
    BookingConfirmed = "confirmed"
    BookingCancelled = "cancelled"
    BookingCompleted = "completed"
)

// Payment methods recorded in the payment sub-record.
const (
    PaymentCard        = "card"
    PaymentMobileMoney = "mobile_money"
    PaymentCash        = "cash"
    PaymentNone        = "none"
)

// PaymentInfo is the payment sub-record embedded in a booking.  The booking
// endpoint creates it with method "none" and unpaid; reconciling it with a
// payment processor is out of scope.
type PaymentInfo struct {
    Method        string     // bookings.payment_method
    IsPaid        bool       // bookings.is_paid
    PaidAt        *time.Time // bookings.paid_at (nullable)
    TransactionID string     // bookings.transaction_id
}

// BookingItem is one line item of a booking: a single room over a stay
// period.  PricePerNightCents and SubtotalCents are supplied by the caller
// and stored verbatim; the server does not recompute
// guests x price x nights.
type BookingItem struct {
    ID                 uint64    // booking_items.id
    BookingID          uint64    // booking_items.booking_id
    RoomID             uint64    // booking_items.room_id
    RoomTitle          string    // booking_items.room_title (denormalized for mail and listings)
    RoomType           string    // booking_items.room_type (bed configuration label)
    CheckIn            time.Time // booking_items.check_in
    CheckOut           time.Time // booking_items.check_out
    Guests             int       // booking_items.guests
    PricePerNightCents int64     // booking_items.price_per_night_cents
    TotalNights        int       // booking_items.total_nights
    SubtotalCents      int64     // booking_items.subtotal_cents
}

// Booking aggregates one or more line items reserved by a single user.
// Reference is a UUID handed to the guest for support enquiries.
type Booking struct {
    ID               uint64        // bookings.id
    Reference        string        // bookings.reference
    UserID           uint64        // bookings.user_id
    Items            []BookingItem // booking_items rows
    TotalAmountCents int64         // bookings.total_amount_cents (caller-supplied, trusted)
    Status           string        // bookings.status
    Payment          PaymentInfo   // payment sub-record
    SpecialRequests  string        // bookings.special_requests
    CreatedAt        time.Time     // bookings.created_at
    UpdatedAt        time.Time     // bookings.updated_at
}
