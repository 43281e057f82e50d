package model

import "time"

// Review is a guest review of a room as stored in the `reviews` table.
// Reviews are immutable once written; administrators may delete them.
// Rating bounds are not enforced at this layer.
type Review struct {
    ID        uint64    // reviews.id
    RoomID    uint64    // reviews.room_id
    UserID    uint64    // reviews.user_id
    Comment   string    // reviews.comment
    Rating    float64   // reviews.rating
    CreatedAt time.Time // reviews.created_at
}
