// internal/app/features/health/handler.go

// Package health serves the liveness endpoint.
package health

import (
	"net/http"
	"os"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/cochranfilms/crewops/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks. Client is nil
// unless the mongo backend is configured.
type Handler struct {
	Client  *mongo.Client
	DataDir string
	Log     *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, dataDir string, logger *zap.Logger) *Handler {
	return &Handler{Client: client, DataDir: dataDir, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	DataDir  string `json:"dataDir"`
	Database string `json:"database,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and {"status":"ok","dataDir":"writable"}; the database
// field appears only when mongo is in play. Any failed check turns the
// response into a 503 with the failing component named.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Ping(), h.Log, "health check")
	defer cancel()

	resp := healthResponse{Status: "ok", DataDir: "writable"}

	if info, err := os.Stat(h.DataDir); err != nil || !info.IsDir() {
		h.Log.Error("health-check: data dir unavailable", zap.String("dir", h.DataDir), zap.Error(err))
		resp.Status = "error"
		resp.DataDir = "unavailable"
		resp.Message = "Data directory unavailable"
		if err != nil {
			resp.Error = err.Error()
		}
		shared.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	if h.Client != nil {
		resp.Database = "connected"
		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			shared.JSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}

	shared.JSON(w, http.StatusOK, resp)
}
