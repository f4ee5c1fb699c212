package wire

import (
	"fyyur/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireArtist(r chi.Router, artistHandler *adaptor.ArtistHandler) {
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", artistHandler.ListArtists)
		r.Post("/search", artistHandler.SearchArtists)

		r.Get("/create", artistHandler.CreateArtistForm)
		r.Post("/create", artistHandler.CreateArtistSubmit)

		r.Get("/{id}", artistHandler.GetArtist)
		r.Get("/{id}/edit", artistHandler.EditArtistForm)
		r.Post("/{id}/edit", artistHandler.EditArtistSubmit)
	})
}
