package entity

import (
	"time"

	"github.com/google/uuid"
)

// Show joins one artist to one venue at a start time. Shows are
// created once and never updated.
type Show struct {
	BaseSimple
	VenueID   uuid.UUID `db:"venue_id"`
	ArtistID  uuid.UUID `db:"artist_id"`
	StartTime time.Time `db:"start_time"`
}

// ShowDetail is a show row joined with the venue and artist it links,
// carrying the display fields the listing pages need.
type ShowDetail struct {
	Show
	VenueName       string  `db:"venue_name"`
	VenueImageLink  *string `db:"venue_image_link"`
	ArtistName      string  `db:"artist_name"`
	ArtistImageLink *string `db:"artist_image_link"`
}
