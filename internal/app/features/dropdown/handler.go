// internal/app/features/dropdown/handler.go

// Package dropdown serves the shared dropdown-options file that both the
// apply form and the admin dashboard populate their selects from.
package dropdown

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"go.uber.org/zap"
)

// Handler serves dropdown-options.json verbatim.
type Handler struct {
	DataDir string
	Log     *zap.Logger
}

// NewHandler constructs a dropdown Handler.
func NewHandler(dataDir string, logger *zap.Logger) *Handler {
	return &Handler{DataDir: dataDir, Log: logger}
}

// Serve handles GET /api/dropdown-options. A missing file is 404 rather
// than 500: the dashboard uses that to fall back to built-in options.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.DataDir, "dropdown-options.json")
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		shared.Error(w, http.StatusNotFound, "Dropdown options file not found")
		return
	}
	if err != nil {
		h.Log.Error("dropdown options unavailable", zap.String("path", path), zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "Failed to load dropdown options")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
