// internal/app/features/apply/handler.go

// Package apply serves the public application form endpoint.
package apply

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/cochranfilms/crewops/internal/app/system/intake"
	"github.com/cochranfilms/crewops/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the apply endpoint.
type Handler struct {
	Svc *intake.Service
	Log *zap.Logger
}

// NewHandler constructs an apply Handler.
func NewHandler(svc *intake.Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

// Submit handles POST /api/apply.
//
// The response contract is fixed by the dashboard: validation problems are
// HTTP 400, but persistence failure is HTTP 200 with success=false so the
// form can show the message instead of a generic network error.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub intake.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		shared.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "apply intake")
	defer cancel()

	err := h.Svc.Submit(ctx, sub)
	switch {
	case err == nil:
		shared.JSON(w, http.StatusOK, map[string]any{"success": true})
	case errors.Is(err, intake.ErrMissingFields):
		shared.Error(w, http.StatusBadRequest, err.Error())
	default:
		shared.Failure(w, http.StatusOK, err.Error())
	}
}
