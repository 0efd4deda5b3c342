// Package storage persists uploaded image payloads on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DiskStore writes uploads into a single directory, naming each file after
// the millisecond it arrived plus the original extension. Two files stored
// within the same millisecond collide and the later write wins; callers
// accept that trade-off for stable, URL-safe names.
type DiskStore struct {
	dir string

	// now is swappable in tests.
	now func() time.Time
}

// NewDiskStore creates the upload directory if needed and returns a store
// rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, now: time.Now}, nil
}

// Dir returns the directory uploads are written to.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes the payload under "<unix-millis><ext>" and returns that name.
// Only the extension of the original filename is kept; the rest is untrusted
// client input and never touches the filesystem.
func (s *DiskStore) Save(originalName string, r io.Reader) (string, error) {
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}
