// internal/app/features/performance/handler.go

// Package performance serves CRUD endpoints for freelancer performance
// reviews, keyed by email.
package performance

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	performancestore "github.com/cochranfilms/crewops/internal/app/store/performance"
	"github.com/cochranfilms/crewops/internal/app/system/timeouts"
	"github.com/cochranfilms/crewops/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler holds dependencies for the performance endpoints.
type Handler struct {
	Store *performancestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a performance Handler.
func NewHandler(store *performancestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// List handles GET /api/performance.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "performance read")
	defer cancel()

	doc, _, err := h.Store.Load(ctx)
	if err != nil {
		h.Log.Error("performance document unavailable", zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "Failed to load performance reviews")
		return
	}
	shared.JSON(w, http.StatusOK, doc)
}

// Get handles GET /api/performance/{email}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "performance read")
	defer cancel()

	email := chi.URLParam(r, "email")
	doc, _, err := h.Store.Load(ctx)
	if err != nil {
		h.Log.Error("performance document unavailable", zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "Failed to load performance review")
		return
	}
	review, ok := doc.PerformanceReviews[email]
	if !ok {
		shared.Error(w, http.StatusNotFound, "Performance review not found")
		return
	}
	shared.JSON(w, http.StatusOK, review)
}

type createRequest struct {
	UserEmail     string         `json:"userEmail"`
	OverallRating int            `json:"overallRating"`
	Categories    map[string]int `json:"categories"`
	Comments      string         `json:"comments"`
	AdminNotes    string         `json:"adminNotes"`
	Status        string         `json:"status"`
	ReviewedBy    string         `json:"reviewedBy"`
}

// Create handles POST /api/performance.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.UserEmail == "" || req.OverallRating == 0 || len(req.Categories) == 0 {
		shared.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Status == "" {
		req.Status = "completed"
	}
	if req.ReviewedBy == "" {
		req.ReviewedBy = "admin"
	}

	now := time.Now()
	review := models.PerformanceReview{
		UserEmail:     req.UserEmail,
		ReviewDate:    now.UTC().Format("2006-01-02"),
		OverallRating: req.OverallRating,
		Categories:    req.Categories,
		Comments:      req.Comments,
		AdminNotes:    req.AdminNotes,
		Status:        req.Status,
		ReviewedBy:    req.ReviewedBy,
		LastUpdated:   now.UTC().Format(time.RFC3339),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "performance create")
	defer cancel()

	switch err := h.Store.Create(ctx, review, now); {
	case err == nil:
		shared.JSON(w, http.StatusCreated, map[string]any{
			"message": "Performance review created successfully",
			"review":  review,
		})
	case errors.Is(err, performancestore.ErrReviewExists):
		shared.Error(w, http.StatusConflict, "Performance review already exists for this user")
	default:
		h.Log.Error("performance create failed", zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "Failed to save performance review")
	}
}

type updateRequest struct {
	OverallRating *int           `json:"overallRating"`
	Categories    map[string]int `json:"categories"`
	Comments      *string        `json:"comments"`
	AdminNotes    *string        `json:"adminNotes"`
	Status        *string        `json:"status"`
}

// Update handles PUT /api/performance/{email}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "performance update")
	defer cancel()

	email := chi.URLParam(r, "email")
	patch := performancestore.ReviewPatch{
		OverallRating: req.OverallRating,
		Categories:    req.Categories,
		Comments:      req.Comments,
		AdminNotes:    req.AdminNotes,
		Status:        req.Status,
	}

	review, err := h.Store.Update(ctx, email, patch, time.Now())
	switch {
	case err == nil:
		shared.JSON(w, http.StatusOK, map[string]any{
			"message": "Performance review updated successfully",
			"review":  review,
		})
	case errors.Is(err, performancestore.ErrReviewNotFound):
		shared.Error(w, http.StatusNotFound, "Performance review not found")
	default:
		h.Log.Error("performance update failed", zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "Failed to update performance review")
	}
}

// Delete handles DELETE /api/performance/{email}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "performance delete")
	defer cancel()

	email := chi.URLParam(r, "email")
	switch err := h.Store.Delete(ctx, email, time.Now()); {
	case err == nil:
		shared.JSON(w, http.StatusOK, map[string]any{
			"message":      "Performance review deleted successfully",
			"deletedEmail": email,
		})
	case errors.Is(err, performancestore.ErrReviewNotFound):
		shared.Error(w, http.StatusNotFound, "Performance review not found")
	default:
		h.Log.Error("performance delete failed", zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "Failed to delete performance review")
	}
}
