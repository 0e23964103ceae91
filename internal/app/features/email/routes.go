// internal/app/features/email/routes.go
package email

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for email delivery; mounted at /api/email.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/send", h.Send)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.MethodNotAllowed(w)
	})
	return r
}
