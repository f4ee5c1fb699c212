package adaptor

import (
	"net/http"

	"fyyur/internal/dto/request"
	"fyyur/internal/usecase"
	"fyyur/pkg/render"
	"fyyur/pkg/utils"

	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.ShowService
	engine  *render.Engine
	log     *zap.Logger
}

func NewShowHandler(service usecase.ShowService, engine *render.Engine, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		engine:  engine,
		log:     log.With(zap.String("handler", "show")),
	}
}

// ListShows handles GET /shows
func (h *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.ListShows(r.Context())
	if err != nil {
		h.log.Error("Failed to list shows", zap.Error(err))
		h.engine.ServerError(w, r)
		return
	}

	h.engine.Render(w, r, http.StatusOK, "pages/shows.html", shows)
}

// CreateShowForm handles GET /shows/create
func (h *ShowHandler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	h.engine.Render(w, r, http.StatusOK, "forms/new_show.html", FormPage{
		Form: &request.ShowForm{},
	})
}

// CreateShowSubmit handles POST /shows/create
func (h *ShowHandler) CreateShowSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.engine.ServerError(w, r)
		return
	}
	form := request.ShowFormFromValues(r.PostForm)

	if validationErrors := form.Validate(); len(validationErrors) > 0 {
		h.log.Warn("Create show validation failed", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		h.engine.Render(w, r, http.StatusBadRequest, "forms/new_show.html", FormPage{
			Form:   form,
			Errors: validationErrors,
		})
		return
	}

	if err := h.service.CreateShow(r.Context(), form); err != nil {
		h.log.Error("Failed to create show", zap.Error(err))
		h.engine.Flash(w, r, "An error occurred. Show could not be listed.")
		h.engine.Render(w, r, http.StatusInternalServerError, "pages/home.html", nil)
		return
	}

	h.engine.Flash(w, r, "Show was successfully listed!")
	h.engine.Render(w, r, http.StatusOK, "pages/home.html", nil)
}
