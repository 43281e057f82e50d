package model

import "time"

// GalleryCategories is the fixed set of venue areas a gallery entry may be
// filed under.  Validation happens before persistence; the column itself is
// plain text.
var GalleryCategories = []string{
    "Rooms & Suites",
    "Dining & Cuisine",
    "Reception & Lounge",
    "Amenities",
    "Outdoor & Garden",
    "Events & Conferences",
    "Guest Experience",
    "Nearby Attractions",
}

// ValidGalleryCategory reports whether c is one of the known venue areas.
func ValidGalleryCategory(c string) bool {
    for _, v := range GalleryCategories {
        if v == c {
            return true
        }
    }
    return false
}

// GalleryEntry is a categorized picture set in the `gallery_entries` table.
// Pictures hold opaque object storage keys (JSON column).
type GalleryEntry struct {
    ID        uint64    // gallery_entries.id
    Caption   string    // gallery_entries.caption
    Category  string    // gallery_entries.category
    Pictures  []string  // gallery_entries.pictures (JSON)
    CreatedAt time.Time // gallery_entries.created_at
    UpdatedAt time.Time // gallery_entries.updated_at
}
