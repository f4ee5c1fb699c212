package response

import (
	"time"

	"fyyur/internal/data/entity"
)

// ShowTimeLayout is the fixed display pattern for show start times on
// detail and listing pages (24-hour clock).
const ShowTimeLayout = "01/02/2006, 15:04:05"

// FormatShowTime renders a start time in the fixed display pattern.
func FormatShowTime(t time.Time) string {
	return t.Format(ShowTimeLayout)
}

type ShowListItem struct {
	VenueID         string `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func ShowToListItem(show *entity.ShowDetail) ShowListItem {
	return ShowListItem{
		VenueID:         show.VenueID.String(),
		VenueName:       show.VenueName,
		ArtistID:        show.ArtistID.String(),
		ArtistName:      show.ArtistName,
		ArtistImageLink: entity.StringValue(show.ArtistImageLink),
		StartTime:       FormatShowTime(show.StartTime),
	}
}

func ShowsToListItems(shows []*entity.ShowDetail) []ShowListItem {
	items := make([]ShowListItem, len(shows))
	for i, show := range shows {
		items[i] = ShowToListItem(show)
	}
	return items
}
