// internal/app/features/notifications/routes.go
package notifications

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the feed; mounted at /api/notifications.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Replace)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.Failure(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}
