package model

import "time"

// Room status values.  Status is informational only; booking submission does
// not consult it and no availability check is performed.
const (
    RoomAvailable   = "available"
    RoomBooked      = "booked"
    RoomMaintenance = "maintenance"
)

// BedConfig is one pricing/bed configuration of a room.  A room offers at
// least one configuration; suites typically offer several.  Stored inside
// the rooms row as a JSON column.
type BedConfig struct {
    RoomType       string `json:"room_type"`        // Classic, Deluxe, Suite, Single, Double
    PriceCents     int64  `json:"price_cents"`      // nightly price in cents
    NumberOfBeds   int    `json:"number_of_beds"`   // beds in this configuration
    BedType        string `json:"bed_type"`         // e.g. queen, twin
    MaxPeople      int    `json:"max_people"`       // maximum occupancy
}

// Room is a catalog entry in the `rooms` table.  Amenities, bed
// configurations and picture keys are JSON columns; pictures hold opaque
// object storage keys, never URLs.  StarRating is derived from reviews and
// rewritten whenever a review is added.
//
// Fields:
//  ID               – primary key identifier.
//  Title            – display title of the room.
//  RoomNumber       – unique room number.
//  Description      – marketing description.
//  Amenities        – amenity labels.
//  Configs          – one or more bed/pricing configurations.
//  Pictures         – ordered slideshow image keys.
//  FrontViewPicture – distinguished front view image key.
//  Status           – available | booked | maintenance.
//  StarRating       – mean review rating, 0–5, one decimal.
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Room struct {
    ID               uint64      // rooms.id
    Title            string      // rooms.title
    RoomNumber       string      // rooms.room_number
    Description      string      // rooms.description
    Amenities        []string    // rooms.amenities (JSON)
    Configs          []BedConfig // rooms.configs (JSON)
    Pictures         []string    // rooms.pictures (JSON)
    FrontViewPicture string      // rooms.front_view_picture
    Status           string      // rooms.status
    StarRating       float64     // rooms.star_rating
    CreatedAt        time.Time   // rooms.created_at
    UpdatedAt        time.Time   // rooms.updated_at
}
