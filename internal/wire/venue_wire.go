package wire

import (
	"fyyur/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.ListVenues)
		r.Post("/search", venueHandler.SearchVenues)

		// Create form before the {id} routes so "create" is never
		// matched as an id.
		r.Get("/create", venueHandler.CreateVenueForm)
		r.Post("/create", venueHandler.CreateVenueSubmit)

		r.Get("/{id}", venueHandler.GetVenue)
		r.Delete("/{id}", venueHandler.DeleteVenue)
		r.Get("/{id}/edit", venueHandler.EditVenueForm)
		r.Post("/{id}/edit", venueHandler.EditVenueSubmit)
	})
}
