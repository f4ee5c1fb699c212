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

type VenueHandler struct {
	service usecase.VenueService
	engine  *render.Engine
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, engine *render.Engine, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		engine:  engine,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// ListVenues handles GET /venues
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.ListVenues(r.Context())
	if err != nil {
		h.log.Error("Failed to list venues", zap.Error(err))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "pages/venues.html", areas)
}

// SearchVenues handles POST /venues/search
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.engine.ServerError(w, r)
		return
	}
	term := r.PostForm.Get("search_term")

	results, err := h.service.SearchVenues(r.Context(), term)
	if err != nil {
		h.log.Error("Failed to search venues", zap.Error(err), zap.String("term", term))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "pages/search_venues.html", SearchPage{
		SearchTerm: term,
		Results:    results,
	})
}

// GetVenue handles GET /venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	venue, err := h.service.GetVenueByID(r.Context(), venueID)
	if errors.Is(err, repository.ErrNotFound) {
		h.engine.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to get venue", zap.Error(err), zap.String("venue_id", venueID))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "pages/show_venue.html", venue)
}

// CreateVenueForm handles GET /venues/create
func (h *VenueHandler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	h.engine.Render(w, r, http.StatusOK, "forms/new_venue.html", FormPage{
		Form:   &request.VenueForm{},
		States: request.States,
		Genres: request.Genres,
	})
}

// CreateVenueSubmit handles POST /venues/create
func (h *VenueHandler) CreateVenueSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.engine.ServerError(w, r)
		return
	}
	form := request.VenueFormFromValues(r.PostForm)

	if validationErrors := utils.ValidateStruct(form); len(validationErrors) > 0 {
		h.log.Warn("Create venue validation failed", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		h.engine.Render(w, r, http.StatusBadRequest, "forms/new_venue.html", FormPage{
			Form:   form,
			Errors: validationErrors,
			States: request.States,
			Genres: request.Genres,
		})
		return
	}

	if err := h.service.CreateVenue(r.Context(), form); err != nil {
		h.log.Error("Failed to create venue", zap.Error(err), zap.String("name", form.Name))
		h.engine.Flash(w, r, "An error occurred. Venue "+form.Name+" could not be listed.")
		h.engine.Render(w, r, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	h.engine.Flash(w, r, "Venue "+form.Name+" was successfully listed!")
	h.engine.Render(w, r, http.StatusOK, "pages/home.html", nil)
}

// EditVenueForm handles GET /venues/{id}/edit, pre-populated from the
// stored venue.
func (h *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	form, err := h.service.GetVenueForm(r.Context(), venueID)
	if errors.Is(err, repository.ErrNotFound) {
		h.engine.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to load venue for edit", zap.Error(err), zap.String("venue_id", venueID))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "forms/edit_venue.html", FormPage{
		ID:     venueID,
		Form:   form,
		States: request.States,
		Genres: request.Genres,
	})
}

// EditVenueSubmit handles POST /venues/{id}/edit
func (h *VenueHandler) EditVenueSubmit(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.engine.ServerError(w, r)
		return
	}
	form := request.VenueFormFromValues(r.PostForm)

	if validationErrors := utils.ValidateStruct(form); len(validationErrors) > 0 {
		h.log.Warn("Edit venue validation failed", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		h.engine.Render(w, r, http.StatusBadRequest, "forms/edit_venue.html", FormPage{
			ID:     venueID,
			Form:   form,
			Errors: validationErrors,
			States: request.States,
			Genres: request.Genres,
		})
		return
	}

	err := h.service.UpdateVenue(r.Context(), venueID, form)
	if errors.Is(err, repository.ErrNotFound) {
		h.engine.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to update venue", zap.Error(err), zap.String("venue_id", venueID))
		h.engine.Flash(w, r, "An error occurred. Venue "+form.Name+" could not be changed.")
		h.engine.Render(w, r, http.StatusInternalServerError, "forms/edit_venue.html", FormPage{
			ID:     venueID,
			Form:   form,
			States: request.States,
			Genres: request.Genres,
		})
		return
	}

	h.engine.Flash(w, r, "Venue "+form.Name+" was successfully changed!")
	http.Redirect(w, r, "/venues/"+venueID, http.StatusSeeOther)
}

// DeleteVenue handles DELETE /venues/{id}. Dependent shows are removed
// with the venue.
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	err := h.service.DeleteVenue(r.Context(), venueID)
	if errors.Is(err, repository.ErrNotFound) {
		h.engine.Flash(w, r, "No venue with id "+venueID+" exists.")
		h.engine.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to delete venue", zap.Error(err), zap.String("venue_id", venueID))
		h.engine.Flash(w, r, "An error occurred. Venue "+venueID+" could not be deleted.")
		h.ListVenues(w, r)
		return
	}

	h.engine.Flash(w, r, "Venue "+venueID+" was successfully deleted!")
	h.ListVenues(w, r)
}
