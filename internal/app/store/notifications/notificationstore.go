// internal/app/store/notifications/notificationstore.go

// Package notificationstore reads and writes the notifications.json
// document. The portal replaces the whole list on every update; the store
// recomputes counts and assigns ids to entries that arrive without one.
package notificationstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	"github.com/cochranfilms/crewops/internal/domain/models"
	"github.com/google/uuid"
)

// Store wraps a docstore.Store with the notifications schema.
type Store struct {
	docs docstore.Store
}

// New creates a notifications store over the given document backend.
func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Load fetches the current document. A missing file yields an empty document
// rather than an error, matching the original endpoint.
func (s *Store) Load(ctx context.Context) (models.NotificationsDocument, docstore.Version, error) {
	raw, ver, err := s.docs.Load(ctx)
	if errors.Is(err, docstore.ErrNotFound) {
		return models.NotificationsDocument{Notifications: []models.Notification{}}, "", nil
	}
	if err != nil {
		return models.NotificationsDocument{}, "", err
	}

	var doc models.NotificationsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.NotificationsDocument{}, "", fmt.Errorf("decode notifications document: %w", err)
	}
	if doc.Notifications == nil {
		doc.Notifications = []models.Notification{}
	}
	doc.UnreadCount = models.CountUnread(doc.Notifications)
	doc.TotalNotifications = len(doc.Notifications)
	return doc, ver, nil
}

// Replace swaps the whole notification list, assigning ids where missing and
// recomputing counts, then writes the document back.
func (s *Store) Replace(ctx context.Context, list []models.Notification, now time.Time) (models.NotificationsDocument, error) {
	_, ver, err := s.Load(ctx)
	if err != nil {
		return models.NotificationsDocument{}, err
	}

	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.NewString()
		}
		if list[i].CreatedAt == "" {
			list[i].CreatedAt = now.UTC().Format(time.RFC3339)
		}
	}

	doc := models.NotificationsDocument{
		Notifications:      list,
		LastUpdated:        now.UTC().Format(time.RFC3339),
		TotalNotifications: len(list),
		UnreadCount:        models.CountUnread(list),
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return models.NotificationsDocument{}, fmt.Errorf("encode notifications document: %w", err)
	}
	if _, err := s.docs.Save(ctx, raw, ver, "Update notifications"); err != nil {
		return models.NotificationsDocument{}, err
	}
	return doc, nil
}
