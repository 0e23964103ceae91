package docstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocal_LoadMissing(t *testing.T) {
	store := NewLocal(t.TempDir(), "users.json")

	_, _, err := store.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocal_CreateThenLoad(t *testing.T) {
	store := NewLocal(t.TempDir(), "users.json")
	ctx := context.Background()

	ver, err := store.Save(ctx, []byte(`{"users":{}}`), "", "create users.json")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ver == "" {
		t.Fatal("expected a non-empty version after save")
	}

	data, loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `{"users":{}}` {
		t.Errorf("content: got %q", data)
	}
	if loaded != ver {
		t.Errorf("version: got %q, want %q", loaded, ver)
	}
}

func TestLocal_StaleVersionConflicts(t *testing.T) {
	store := NewLocal(t.TempDir(), "users.json")
	ctx := context.Background()

	v1, err := store.Save(ctx, []byte(`one`), "", "v1")
	if err != nil {
		t.Fatalf("Save v1 failed: %v", err)
	}
	if _, err := store.Save(ctx, []byte(`two`), v1, "v2"); err != nil {
		t.Fatalf("Save v2 failed: %v", err)
	}

	// Writing again with the original version must be rejected.
	_, err = store.Save(ctx, []byte(`three`), v1, "stale")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLocal_EmptyVersionOnExistingFileConflicts(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "users.json")
	ctx := context.Background()

	if _, err := store.Save(ctx, []byte(`one`), "", "v1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, err := store.Save(ctx, []byte(`two`), "", "blind write")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for blind write, got %v", err)
	}
}

func TestLocal_Delete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "contract.pdf")
	ctx := context.Background()

	ver, err := store.Save(ctx, []byte("pdf bytes"), "", "upload")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, ver, "remove"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "contract.pdf")); !os.IsNotExist(err) {
		t.Errorf("expected file to be gone, stat err = %v", err)
	}

	if err := store.Delete(ctx, ver, "again"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
