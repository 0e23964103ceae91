// internal/app/store/docstore/local.go
package docstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Local is a Store backed by one flat file under a data directory.
// The version token is the sha-256 of the file contents, so a save only
// succeeds when the file still holds exactly what the caller read.
type Local struct {
	path string
}

// NewLocal returns a Local store for the named file inside dir.
func NewLocal(dir, name string) *Local {
	return &Local{path: filepath.Join(dir, name)}
}

// Path returns the backing file path.
func (l *Local) Path() string { return l.path }

// Load reads the file and hashes it into a version.
func (l *Local) Load(ctx context.Context) ([]byte, Version, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("read %s: %w", l.path, err)
	}
	return data, hashVersion(data), nil
}

// Save writes atomically (temp file + rename) after verifying the version.
// A missing file accepts any version so a create never spuriously conflicts
// with a caller that read the document just before it was deleted.
func (l *Local) Save(ctx context.Context, content []byte, ver Version, message string) (Version, error) {
	if err := l.checkVersion(ver); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir for %s: %w", l.path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(l.path), filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("temp file for %s: %w", l.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w", l.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close %s: %w", l.path, err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename into %s: %w", l.path, err)
	}
	return hashVersion(content), nil
}

// Delete removes the file after verifying the version.
func (l *Local) Delete(ctx context.Context, ver Version, message string) error {
	if err := l.checkVersion(ver); err != nil {
		return err
	}
	if err := os.Remove(l.path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("remove %s: %w", l.path, err)
	}
	return nil
}

func (l *Local) checkVersion(ver Version) error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // create; any version accepted
		}
		return fmt.Errorf("read %s: %w", l.path, err)
	}
	if ver == "" || hashVersion(data) != ver {
		return ErrConflict
	}
	return nil
}

func hashVersion(data []byte) Version {
	sum := sha256.Sum256(data)
	return Version(hex.EncodeToString(sum[:]))
}
