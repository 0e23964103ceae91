// internal/app/features/freelancers/handler.go

// Package freelancers serves the legacy freelancers roster file. The
// dashboard still reads it for the pre-migration roster view.
package freelancers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"go.uber.org/zap"
)

// Handler serves freelancers.json verbatim.
type Handler struct {
	DataDir string
	Log     *zap.Logger
}

// NewHandler constructs a freelancers Handler.
func NewHandler(dataDir string, logger *zap.Logger) *Handler {
	return &Handler{DataDir: dataDir, Log: logger}
}

// Serve handles GET /api/freelancers.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.DataDir, "freelancers.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		h.Log.Error("freelancers data unavailable", zap.String("path", path), zap.Error(err))
		shared.JSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to load freelancers data",
			"details": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
