package middleware

import (
	"net/http"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// Feature returns a middleware that guards a whole feature area behind a
// configuration flag. The gate is a function so reloaded flags take effect
// without rebuilding the router. Disabled features answer 404 rather than
// 403 so the routes are indistinguishable from ones that never existed.
func Feature(enabled func() bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled() {
				model.NewNotFoundError("resource").WriteJSON(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
