// internal/app/features/notifications/handler.go

// Package notifications serves the dashboard notification feed. The
// dashboard owns the list: it reads everything and posts the whole list
// back after marking, adding, or clearing entries.
package notifications

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	notificationstore "github.com/cochranfilms/crewops/internal/app/store/notifications"
	"github.com/cochranfilms/crewops/internal/app/system/timeouts"
	"github.com/cochranfilms/crewops/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds dependencies for the notification endpoints.
type Handler struct {
	Store *notificationstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a notifications Handler.
func NewHandler(store *notificationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// List handles GET /api/notifications.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "notifications read")
	defer cancel()

	doc, _, err := h.Store.Load(ctx)
	if err != nil {
		h.Log.Error("notifications document unavailable", zap.Error(err))
		shared.Failure(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	shared.JSON(w, http.StatusOK, doc)
}

type replaceRequest struct {
	Notifications []models.Notification `json:"notifications"`
}

// Replace handles POST /api/notifications.
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Notifications == nil {
		shared.Failure(w, http.StatusBadRequest, "Invalid notifications data")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "notifications write")
	defer cancel()

	doc, err := h.Store.Replace(ctx, req.Notifications, time.Now())
	if err != nil {
		h.Log.Error("notifications write failed", zap.Error(err))
		shared.Failure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	shared.JSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"message":            "Notifications updated successfully",
		"totalNotifications": doc.TotalNotifications,
		"unreadCount":        doc.UnreadCount,
	})
}
