// internal/app/features/dropdown/routes.go
package dropdown

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for dropdown options; mounted at
// /api/dropdown-options.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.MethodNotAllowed(w)
	})
	return r
}
