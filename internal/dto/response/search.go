package response

type SearchResult struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResults is the response shape of both venue and artist search.
type SearchResults struct {
	Count int            `json:"count"`
	Data  []SearchResult `json:"data"`
}
