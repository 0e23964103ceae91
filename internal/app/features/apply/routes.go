// internal/app/features/apply/routes.go
package apply

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the apply endpoint; mounted at /api/apply.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Submit)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.MethodNotAllowed(w)
	})
	return r
}
