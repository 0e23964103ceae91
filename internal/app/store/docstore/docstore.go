// internal/app/store/docstore/docstore.go

// Package docstore provides versioned get/put of whole JSON documents with
// optimistic concurrency. Each named document is a single blob; writers pass
// the version they read and the save is rejected when the stored version has
// moved on. Backends: local flat file, GitHub-style contents API, MongoDB.
package docstore

import (
	"context"
	"errors"
)

// Version is an opaque content-version token (a sha in all backends).
// The zero value means "no prior version" and is only valid when creating
// a document that does not exist yet.
type Version string

// Sentinel errors shared by all backends.
var (
	// ErrNotFound is returned by Load when the document does not exist.
	ErrNotFound = errors.New("docstore: document not found")

	// ErrConflict is returned by Save/Delete when the supplied version no
	// longer matches the stored document. The caller decides whether to
	// re-load and retry; the store never retries on its own.
	ErrConflict = errors.New("docstore: version conflict")
)

// Store is a versioned single-document store.
type Store interface {
	// Load returns the document bytes and its current version.
	Load(ctx context.Context) ([]byte, Version, error)

	// Save writes the document conditionally on ver. An empty ver creates
	// the document and fails with ErrConflict if it already exists (except
	// the local backend, which treats first write of a missing file as a
	// create regardless). The commit message is recorded by backends that
	// keep history and ignored by the rest.
	Save(ctx context.Context, content []byte, ver Version, message string) (Version, error)

	// Delete removes the document conditionally on ver.
	Delete(ctx context.Context, ver Version, message string) error
}
