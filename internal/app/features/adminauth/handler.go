// internal/app/features/adminauth/handler.go

// Package adminauth serves admin session login and logout for the
// dashboard's guarded endpoints.
package adminauth

import (
	"encoding/json"
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/cochranfilms/crewops/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler holds the configured admin password hash.
type Handler struct {
	PasswordHash string
	Log          *zap.Logger
}

// NewHandler constructs an adminauth Handler. passwordHash is the bcrypt
// hash of the shared admin password; empty disables login entirely.
func NewHandler(passwordHash string, logger *zap.Logger) *Handler {
	return &Handler{PasswordHash: passwordHash, Log: logger}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.PasswordHash == "" {
		shared.Error(w, http.StatusServiceUnavailable, "Admin login is not configured")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		shared.Failure(w, http.StatusBadRequest, "password is required")
		return
	}

	if !auth.CheckPassword(h.PasswordHash, req.Password) {
		h.Log.Warn("admin login rejected", zap.String("remote", r.RemoteAddr))
		shared.Failure(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	if err := auth.SignIn(w, r); err != nil {
		h.Log.Error("session write failed", zap.Error(err))
		shared.Failure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("admin signed in", zap.String("remote", r.RemoteAddr))
	shared.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// Logout handles POST /api/admin/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Error("session clear failed", zap.Error(err))
		shared.Failure(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	shared.JSON(w, http.StatusOK, map[string]any{"success": true})
}
