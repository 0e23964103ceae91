// internal/app/store/contracts/contractstore.go

// Package contractstore reads and updates the uploaded-contracts.json
// document: the ledger of signed-contract PDFs the admin dashboard tracks.
package contractstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	"github.com/cochranfilms/crewops/internal/domain/models"
)

// Store wraps a docstore.Store with the uploaded-contracts schema.
type Store struct {
	docs docstore.Store
}

// New creates a contracts store over the given document backend.
func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Load fetches and decodes the current document.
func (s *Store) Load(ctx context.Context) (models.UploadedContractsDocument, docstore.Version, error) {
	raw, ver, err := s.docs.Load(ctx)
	if err != nil {
		return models.UploadedContractsDocument{}, "", err
	}
	var doc models.UploadedContractsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.UploadedContractsDocument{}, "", fmt.Errorf("decode contracts document: %w", err)
	}
	return doc, ver, nil
}

// RemoveByFileName filters the named contract out of the document and writes
// it back, recomputing totals and lastUpdated. Returns whether anything was
// removed. A missing document counts as nothing removed, not an error.
func (s *Store) RemoveByFileName(ctx context.Context, fileName string, now time.Time) (bool, error) {
	doc, ver, err := s.Load(ctx)
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	kept := doc.UploadedContracts[:0]
	for _, c := range doc.UploadedContracts {
		if c.FileName != fileName {
			kept = append(kept, c)
		}
	}
	removed := len(kept) < len(doc.UploadedContracts)
	if !removed {
		return false, nil
	}

	doc.UploadedContracts = kept
	doc.TotalContracts = len(kept)
	doc.LastUpdated = now.Format("2006-01-02")

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode contracts document: %w", err)
	}
	if _, err := s.docs.Save(ctx, raw, ver, fmt.Sprintf("Remove contract %s", fileName)); err != nil {
		return false, err
	}
	return true, nil
}
