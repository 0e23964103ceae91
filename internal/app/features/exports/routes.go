// internal/app/features/exports/routes.go
package exports

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for report export; mounted at
// /api/export-results.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Export)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.MethodNotAllowed(w)
	})
	return r
}
