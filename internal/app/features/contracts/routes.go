// internal/app/features/contracts/routes.go
package contracts

import (
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/cochranfilms/crewops/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// ListRoutes returns the read subrouter; mounted at /api/uploaded-contracts.
func ListRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.MethodNotAllowed(w)
	})
	return r
}

// DeleteRoutes returns the admin-guarded delete subrouter; mounted at
// /api/delete-pdf.
func DeleteRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAdmin)
	r.Delete("/", h.Delete)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		shared.Failure(w, http.StatusMethodNotAllowed, "Method not allowed. Use DELETE.")
	})
	return r
}
