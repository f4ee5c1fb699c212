// Package render executes the server-side HTML templates. Every page
// template is parsed together with the shared layout at startup; a
// missing template is a boot-time failure, not a request-time one.
package render

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type Engine struct {
	templates map[string]*template.Template
	store     *sessions.CookieStore
	log       *zap.Logger
}

// Page is the data envelope every template receives.
type Page struct {
	Flashes []string
	Data    any
}

// NewEngine parses all templates under dir (pages/, forms/, errors/
// against layouts/layout.html) and prepares the flash cookie store
// signed with secret.
func NewEngine(dir, secret string, log *zap.Logger) (*Engine, error) {
	layout := filepath.Join(dir, "layouts", "layout.html")

	funcs := template.FuncMap{
		"datetime": FormatDatetime,
		"has": func(list []string, value string) bool {
			for _, item := range list {
				if item == value {
					return true
				}
			}
			return false
		},
	}

	templates := make(map[string]*template.Template)
	for _, sub := range []string{"pages", "forms", "errors"} {
		matches, err := filepath.Glob(filepath.Join(dir, sub, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("glob templates %s: %w", sub, err)
		}
		for _, match := range matches {
			name := sub + "/" + filepath.Base(match)
			ts, err := template.New("layout.html").Funcs(funcs).ParseFiles(layout, match)
			if err != nil {
				return nil, fmt.Errorf("parse template %s: %w", name, err)
			}
			templates[name] = ts
		}
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}

	return &Engine{
		templates: templates,
		store:     newFlashStore(secret),
		log:       log.With(zap.String("component", "render")),
	}, nil
}

// Render executes the named template with queued flash messages and
// writes it with the given status code.
func (e *Engine) Render(w http.ResponseWriter, r *http.Request, code int, name string, data any) {
	ts, ok := e.templates[name]
	if !ok {
		e.log.Error("Unknown template", zap.String("template", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	page := Page{
		Flashes: e.flashes(w, r),
		Data:    data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := ts.ExecuteTemplate(w, "layout.html", page); err != nil {
		e.log.Error("Failed to execute template",
			zap.Error(err),
			zap.String("template", name),
		)
	}
}

// NotFound renders the dedicated 404 page.
func (e *Engine) NotFound(w http.ResponseWriter, r *http.Request) {
	e.Render(w, r, http.StatusNotFound, "errors/404.html", nil)
}

// ServerError renders the dedicated 500 page.
func (e *Engine) ServerError(w http.ResponseWriter, r *http.Request) {
	e.Render(w, r, http.StatusInternalServerError, "errors/500.html", nil)
}
