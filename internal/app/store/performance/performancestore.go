// internal/app/store/performance/performancestore.go

// Package performancestore reads and writes the performance.json document of
// admin reviews, keyed by freelancer email.
package performancestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	"github.com/cochranfilms/crewops/internal/domain/models"
)

// Store errors surfaced to handlers.
var (
	// ErrReviewExists is returned by Create when the email already has a review.
	ErrReviewExists = errors.New("performance review already exists")

	// ErrReviewNotFound is returned by Update/Delete for unknown emails.
	ErrReviewNotFound = errors.New("performance review not found")
)

// Store wraps a docstore.Store with the performance-document schema.
type Store struct {
	docs docstore.Store
}

// New creates a performance store over the given document backend.
func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Load fetches the current document. A missing or unreadable file yields the
// default empty document, matching the original endpoint.
func (s *Store) Load(ctx context.Context) (models.PerformanceDocument, docstore.Version, error) {
	raw, ver, err := s.docs.Load(ctx)
	if err != nil {
		return defaultDocument(time.Now()), "", nil
	}

	var doc models.PerformanceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return defaultDocument(time.Now()), "", nil
	}
	if doc.PerformanceReviews == nil {
		doc.PerformanceReviews = map[string]models.PerformanceReview{}
	}
	return doc, ver, nil
}

// Create adds a review for an email that has none yet.
func (s *Store) Create(ctx context.Context, review models.PerformanceReview, now time.Time) error {
	doc, ver, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if _, exists := doc.PerformanceReviews[review.UserEmail]; exists {
		return ErrReviewExists
	}
	doc.PerformanceReviews[review.UserEmail] = review
	return s.save(ctx, doc, ver, now, fmt.Sprintf("Add performance review for %s", review.UserEmail))
}

// Update applies non-zero fields of patch onto the existing review.
func (s *Store) Update(ctx context.Context, email string, patch ReviewPatch, now time.Time) (models.PerformanceReview, error) {
	doc, ver, err := s.Load(ctx)
	if err != nil {
		return models.PerformanceReview{}, err
	}
	review, ok := doc.PerformanceReviews[email]
	if !ok {
		return models.PerformanceReview{}, ErrReviewNotFound
	}

	if patch.OverallRating != nil {
		review.OverallRating = *patch.OverallRating
	}
	if patch.Categories != nil {
		review.Categories = patch.Categories
	}
	if patch.Comments != nil {
		review.Comments = *patch.Comments
	}
	if patch.AdminNotes != nil {
		review.AdminNotes = *patch.AdminNotes
	}
	if patch.Status != nil {
		review.Status = *patch.Status
	}
	review.LastUpdated = now.UTC().Format(time.RFC3339)

	doc.PerformanceReviews[email] = review
	if err := s.save(ctx, doc, ver, now, fmt.Sprintf("Update performance review for %s", email)); err != nil {
		return models.PerformanceReview{}, err
	}
	return review, nil
}

// Delete removes the review for an email.
func (s *Store) Delete(ctx context.Context, email string, now time.Time) error {
	doc, ver, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := doc.PerformanceReviews[email]; !ok {
		return ErrReviewNotFound
	}
	delete(doc.PerformanceReviews, email)
	return s.save(ctx, doc, ver, now, fmt.Sprintf("Delete performance review for %s", email))
}

// ReviewPatch carries the updatable review fields; nil means "leave as is".
type ReviewPatch struct {
	OverallRating *int
	Categories    map[string]int
	Comments      *string
	AdminNotes    *string
	Status        *string
}

func (s *Store) save(ctx context.Context, doc models.PerformanceDocument, ver docstore.Version, now time.Time, message string) error {
	doc.TotalReviews = len(doc.PerformanceReviews)
	doc.LastUpdated = now.UTC().Format(time.RFC3339)
	if len(doc.ReviewOptions.Rating) == 0 {
		doc.ReviewOptions = models.DefaultReviewOptions()
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode performance document: %w", err)
	}
	_, err = s.docs.Save(ctx, raw, ver, message)
	return err
}

func defaultDocument(now time.Time) models.PerformanceDocument {
	return models.PerformanceDocument{
		PerformanceReviews: map[string]models.PerformanceReview{},
		ReviewOptions:      models.DefaultReviewOptions(),
		LastUpdated:        now.UTC().Format(time.RFC3339),
	}
}
