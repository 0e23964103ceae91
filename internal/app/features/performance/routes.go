// internal/app/features/performance/routes.go
package performance

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/cochranfilms/crewops/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for reviews; mounted at /api/performance.
// Reads are open to the dashboard; writes need an admin session.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{email}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/", h.Create)
		r.Put("/{email}", h.Update)
		r.Delete("/{email}", h.Delete)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.MethodNotAllowed(w)
	})
	return r
}
