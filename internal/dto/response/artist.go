package response

import (
	"fyyur/internal/data/entity"
)

type ArtistListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ArtistsToListItems(artists []*entity.Artist) []ArtistListItem {
	items := make([]ArtistListItem, len(artists))
	for i, artist := range artists {
		items[i] = ArtistListItem{
			ID:   artist.ID.String(),
			Name: artist.Name,
		}
	}
	return items
}

// ArtistShow is a show row on the artist detail page, joined with the
// venue side of the relation.
type ArtistShow struct {
	VenueID        string `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type ArtistDetail struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ArtistToDetail assembles the artist detail view from the entity and
// its already-partitioned shows.
func ArtistToDetail(artist *entity.Artist, past, upcoming []*entity.ShowDetail) *ArtistDetail {
	return &ArtistDetail{
		ID:                 artist.ID.String(),
		Name:               artist.Name,
		Genres:             artist.Genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              entity.StringValue(artist.Phone),
		Website:            entity.StringValue(artist.Website),
		FacebookLink:       entity.StringValue(artist.FacebookLink),
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: entity.StringValue(artist.SeekingDescription),
		ImageLink:          entity.StringValue(artist.ImageLink),
		PastShows:          showsToArtistShows(past),
		PastShowsCount:     len(past),
		UpcomingShows:      showsToArtistShows(upcoming),
		UpcomingShowsCount: len(upcoming),
	}
}

func showsToArtistShows(shows []*entity.ShowDetail) []ArtistShow {
	items := make([]ArtistShow, len(shows))
	for i, show := range shows {
		items[i] = ArtistShow{
			VenueID:        show.VenueID.String(),
			VenueName:      show.VenueName,
			VenueImageLink: entity.StringValue(show.VenueImageLink),
			StartTime:      FormatShowTime(show.StartTime),
		}
	}
	return items
}
