// internal/app/features/exports/handler.go

// Package exports turns diagnostic-run results into downloadable report
// files for the admin dashboard.
package exports

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"go.uber.org/zap"
)

// Handler holds dependencies for the export endpoint.
type Handler struct {
	Log *zap.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewHandler constructs an exports Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type exportRequest struct {
	Results *Results `json:"results"`
	Format  string   `json:"format"`
}

// Export handles POST /api/export-results. The response is the report file
// itself with download headers, not a JSON envelope.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Results == nil || req.Format == "" {
		shared.Error(w, http.StatusBadRequest, "Results and format are required")
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	date := now().UTC().Format("2006-01-02")

	var content, contentType, filename string
	switch strings.ToLower(req.Format) {
	case "json":
		raw, err := json.MarshalIndent(req.Results, "", "  ")
		if err != nil {
			shared.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		content = string(raw)
		contentType = "application/json"
		filename = "test-results-" + date + ".json"
	case "markdown":
		content = MarkdownReport(*req.Results)
		contentType = "text/markdown"
		filename = "test-results-" + date + ".md"
	case "html":
		rendered, err := HTMLReport(*req.Results)
		if err != nil {
			h.Log.Error("html report render failed", zap.Error(err))
			shared.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		content = rendered
		contentType = "text/html"
		filename = "test-results-" + date + ".html"
	default:
		shared.Error(w, http.StatusBadRequest, "Unsupported format. Use json, markdown, or html")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}
