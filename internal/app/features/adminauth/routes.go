// internal/app/features/adminauth/routes.go
package adminauth

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for admin sessions; mounted at /api/admin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.MethodNotAllowed(w)
	})
	return r
}
