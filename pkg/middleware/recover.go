package middleware

import (
	"net/http"

	"fyyur/pkg/render"

	"go.uber.org/zap"
)

// Recover middleware: panics become the 500 error page.
func Recover(logger *zap.Logger, engine *render.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					engine.ServerError(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
