// internal/app/store/users/userstore.go

// Package userstore reads and writes the users.json document through a
// versioned document store.
package userstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	"github.com/cochranfilms/crewops/internal/domain/models"
)

// Store wraps a docstore.Store with the users-document schema.
type Store struct {
	docs docstore.Store
}

// New creates a users store over the given document backend.
func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Load fetches and decodes the current document. Callers decide how to treat
// docstore.ErrNotFound; the intake flow starts from an empty document, the
// read path falls back to the legacy bootstrap.
func (s *Store) Load(ctx context.Context) (models.UsersDocument, docstore.Version, error) {
	raw, ver, err := s.docs.Load(ctx)
	if err != nil {
		return models.UsersDocument{}, "", err
	}

	var doc models.UsersDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.UsersDocument{}, "", fmt.Errorf("decode users document: %w", err)
	}
	if doc.Users == nil {
		doc.Users = map[string]models.UserRecord{}
	}
	return doc, ver, nil
}

// Save serializes and conditionally writes the document. A version conflict
// surfaces as docstore.ErrConflict for the caller's retry loop.
func (s *Store) Save(ctx context.Context, doc models.UsersDocument, ver docstore.Version, message string) (docstore.Version, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode users document: %w", err)
	}
	return s.docs.Save(ctx, raw, ver, message)
}
