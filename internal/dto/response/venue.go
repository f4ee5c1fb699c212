package response

import (
	"fyyur/internal/data/entity"

	"github.com/google/uuid"
)

type VenueListItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea is one (city, state) section of the grouped venue listing.
type VenueArea struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueListItem `json:"venues"`
}

// GroupVenuesByArea folds venues into (city, state) sections in a
// single pass. It relies on the caller handing over rows already
// ordered by (state, city) so equal pairs are contiguous; it performs
// no sorting itself. upcomingCounts carries the per-venue upcoming-show
// count keyed by venue id.
func GroupVenuesByArea(venues []*entity.Venue, upcomingCounts map[uuid.UUID]int) []VenueArea {
	var areas []VenueArea

	for _, venue := range venues {
		last := len(areas) - 1
		if last < 0 || areas[last].City != venue.City || areas[last].State != venue.State {
			areas = append(areas, VenueArea{City: venue.City, State: venue.State})
			last++
		}

		areas[last].Venues = append(areas[last].Venues, VenueListItem{
			ID:               venue.ID.String(),
			Name:             venue.Name,
			NumUpcomingShows: upcomingCounts[venue.ID],
		})
	}

	return areas
}

// VenueShow is a show row on the venue detail page, joined with the
// artist side of the relation.
type VenueShow struct {
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type VenueDetail struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Address            string      `json:"address"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// VenueToDetail assembles the venue detail view from the entity and its
// already-partitioned shows.
func VenueToDetail(venue *entity.Venue, past, upcoming []*entity.ShowDetail) *VenueDetail {
	return &VenueDetail{
		ID:                 venue.ID.String(),
		Name:               venue.Name,
		Genres:             venue.Genres,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              entity.StringValue(venue.Phone),
		Website:            entity.StringValue(venue.Website),
		FacebookLink:       entity.StringValue(venue.FacebookLink),
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: entity.StringValue(venue.SeekingDescription),
		ImageLink:          entity.StringValue(venue.ImageLink),
		PastShows:          showsToVenueShows(past),
		PastShowsCount:     len(past),
		UpcomingShows:      showsToVenueShows(upcoming),
		UpcomingShowsCount: len(upcoming),
	}
}

func showsToVenueShows(shows []*entity.ShowDetail) []VenueShow {
	items := make([]VenueShow, len(shows))
	for i, show := range shows {
		items[i] = VenueShow{
			ArtistID:        show.ArtistID.String(),
			ArtistName:      show.ArtistName,
			ArtistImageLink: entity.StringValue(show.ArtistImageLink),
			StartTime:       FormatShowTime(show.StartTime),
		}
	}
	return items
}
