package adaptor

import (
	"fyyur/internal/usecase"
	"fyyur/pkg/render"

	"go.uber.org/zap"
)

type Handler struct {
	Home   *HomeHandler
	Venue  *VenueHandler
	Artist *ArtistHandler
	Show   *ShowHandler
}

func NewHandler(service *usecase.Service, engine *render.Engine, log *zap.Logger) *Handler {
	return &Handler{
		Home:   NewHomeHandler(engine),
		Venue:  NewVenueHandler(service.Venue, engine, log),
		Artist: NewArtistHandler(service.Artist, engine, log),
		Show:   NewShowHandler(service.Show, engine, log),
	}
}

// FormPage is the template data for the create and edit form pages.
// Errors is a field name to message map; a failed submission re-renders
// with the entered values still in Form.
type FormPage struct {
	ID     string
	Form   any
	Errors map[string]string
	States []string
	Genres []string
}

// SearchPage is the template data for the search result pages.
type SearchPage struct {
	SearchTerm string
	Results    any
}
