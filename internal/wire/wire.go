// internal/wire/wire.go
package wire

import (
	"net/http"

	"fyyur/internal/adaptor"
	"fyyur/internal/data/repository"
	"fyyur/internal/usecase"
	"fyyur/pkg/middleware"
	"fyyur/pkg/render"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application. There is no other application-level
// state; everything request handlers need hangs off the router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, engine *render.Engine, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, engine, logger)

	router := setupRouter(handler, engine, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, engine *render.Engine, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger, engine))

	r.Get("/", handler.Home.Index)

	wireVenue(r, handler.Venue)
	wireArtist(r, handler.Artist)
	wireShow(r, handler.Show)

	// Static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	// Unknown paths get the dedicated 404 page, not chi's default.
	r.NotFound(engine.NotFound)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
