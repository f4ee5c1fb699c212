package adaptor

import (
	"errors"
	"net/http"

	"fyyur/internal/data/repository"
	"fyyur/internal/dto/request"
	"fyyur/internal/usecase"
	"fyyur/pkg/render"
	"fyyur/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArtistHandler struct {
	service usecase.ArtistService
	engine  *render.Engine
	log     *zap.Logger
}

func NewArtistHandler(service usecase.ArtistService, engine *render.Engine, log *zap.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		engine:  engine,
		log:     log.With(zap.String("handler", "artist")),
	}
}

// ListArtists handles GET /artists
func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.ListArtists(r.Context())
	if err != nil {
		h.log.Error("Failed to list artists", zap.Error(err))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "pages/artists.html", artists)
}

// SearchArtists handles POST /artists/search
func (h *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.engine.ServerError(w, r)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := h.service.SearchArtists(r.Context(), term)
	if err != nil {
		h.log.Error("Failed to search artists", zap.Error(err), zap.String("term", term))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "pages/search_artists.html", SearchPage{
		SearchTerm: term,
		Results:    results,
	})
}

// GetArtist handles GET /artists/{id}
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	artist, err := h.service.GetArtistByID(r.Context(), artistID)
	if errors.Is(err, repository.ErrNotFound) {
		h.engine.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to get artist", zap.Error(err), zap.String("artist_id", artistID))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "pages/show_artist.html", artist)
}

// CreateArtistForm handles GET /artists/create
func (h *ArtistHandler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	h.engine.Render(w, r, http.StatusOK, "forms/new_artist.html", FormPage{
		Form:   &request.ArtistForm{},
		States: request.States,
		Genres: request.Genres,
	})
}

// CreateArtistSubmit handles POST /artists/create
func (h *ArtistHandler) CreateArtistSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.engine.ServerError(w, r)
		return
	}
	form := request.ArtistFormFromValues(r.PostForm)

	if validationErrors := utils.ValidateStruct(form); len(validationErrors) > 0 {
		h.log.Warn("Create artist validation failed", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		h.engine.Render(w, r, http.StatusBadRequest, "forms/new_artist.html", FormPage{
			Form:   form,
			Errors: validationErrors,
			States: request.States,
			Genres: request.Genres,
		})
		return
	}

	if err := h.service.CreateArtist(r.Context(), form); err != nil {
		h.log.Error("Failed to create artist", zap.Error(err), zap.String("name", form.Name))
		h.engine.Flash(w, r, "An error occurred. Artist "+form.Name+" could not be listed.")
		h.engine.Render(w, r, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	h.engine.Flash(w, r, "Artist "+form.Name+" was successfully listed!")
	h.engine.Render(w, r, http.StatusOK, "pages/home.html", nil)
}

// EditArtistForm handles GET /artists/{id}/edit, pre-populated from the
// stored artist.
func (h *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	form, err := h.service.GetArtistForm(r.Context(), artistID)
	if errors.Is(err, repository.ErrNotFound) {
		h.engine.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to load artist for edit", zap.Error(err), zap.String("artist_id", artistID))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "forms/edit_artist.html", FormPage{
		ID:     artistID,
		Form:   form,
		States: request.States,
		Genres: request.Genres,
	})
}

// EditArtistSubmit handles POST /artists/{id}/edit
func (h *ArtistHandler) EditArtistSubmit(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.engine.ServerError(w, r)
		return
	}
	form := request.ArtistFormFromValues(r.PostForm)

	if validationErrors := utils.ValidateStruct(form); len(validationErrors) > 0 {
		h.log.Warn("Edit artist validation failed", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		h.engine.Render(w, r, http.StatusBadRequest, "forms/edit_artist.html", FormPage{
			ID:     artistID,
			Form:   form,
			Errors: validationErrors,
			States: request.States,
			Genres: request.Genres,
		})
		return
	}

	err := h.service.UpdateArtist(r.Context(), artistID, form)
	if errors.Is(err, repository.ErrNotFound) {
		h.engine.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to update artist", zap.Error(err), zap.String("artist_id", artistID))
		h.engine.Flash(w, r, "An error occurred. Artist "+form.Name+" could not be changed.")
		h.engine.Render(w, r, http.StatusInternalServerError, "forms/edit_artist.html", FormPage{
			ID:     artistID,
			Form:   form,
			States: request.States,
			Genres: request.Genres,
		})
		return
	}

	h.engine.Flash(w, r, "Artist "+form.Name+" was successfully changed!")
	http.Redirect(w, r, "/artists/"+artistID, http.StatusSeeOther)
}
