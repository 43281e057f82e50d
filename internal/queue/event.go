// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking is persisted. It carries
// enough information for downstream consumers to log, notify, or feed
// analytics without querying the primary database.
type BookingCreatedEvent struct {
    BookingID        uint64   `json:"booking_id"`
    Reference        string   `json:"reference"`
    UserID           uint64   `json:"user_id"`
    GuestName        string   `json:"guest_name"`
    GuestEmail       string   `json:"guest_email"`
    RoomTitles       []string `json:"rooms"`
    TotalAmountCents int64    `json:"total_amount_cents"`
    Status           string   `json:"status"`
    CreatedAt        string   `json:"created_at"`
}
