package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"marketplace/utils"
)

// Namespace under which every uploaded image is addressed.
const imageNamespace = "item_images"

// FileStore persists uploaded image payloads and addresses them by the
// generated path it returns.
type FileStore interface {
	Save(name string, data []byte) (string, error)
	Remove(path string) error
}

// DiskStore is a FileStore writing payloads beneath a root directory on
// local disk.
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// Save writes data under the item_images namespace and returns the generated
// relative path. The original file name only contributes its extension; the
// stored name is a fresh UUID so uploads can never collide or be guessed.
func (s *DiskStore) Save(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	rel := filepath.Join(imageNamespace, utils.GenerateID()+ext)

	full := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", rel, err)
	}

	return filepath.ToSlash(rel), nil
}

// Remove deletes a previously stored payload. A path that is already gone is
// not an error.
func (s *DiskStore) Remove(path string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", path, err)
	}
	return nil
}
