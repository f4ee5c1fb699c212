package adaptor

import (
	"net/http"

	"fyyur/pkg/render"
)

type HomeHandler struct {
	engine *render.Engine
}

func NewHomeHandler(engine *render.Engine) *HomeHandler {
	return &HomeHandler{engine: engine}
}

// Index handles GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.engine.Render(w, r, http.StatusOK, "pages/home.html", nil)
}
