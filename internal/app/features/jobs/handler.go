// internal/app/features/jobs/handler.go

// Package jobs serves the published job listings file.
package jobs

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"go.uber.org/zap"
)

// Handler serves jobs-data.json verbatim. The listings file is maintained
// by the admin dashboard; this endpoint only hands it to the public site.
type Handler struct {
	DataDir string
	Log     *zap.Logger
}

// NewHandler constructs a jobs Handler.
func NewHandler(dataDir string, logger *zap.Logger) *Handler {
	return &Handler{DataDir: dataDir, Log: logger}
}

// Serve handles GET /api/jobs-data.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.DataDir, "jobs-data.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		h.Log.Error("jobs data unavailable", zap.String("path", path), zap.Error(err))
		shared.JSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to load jobs data",
			"details": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
