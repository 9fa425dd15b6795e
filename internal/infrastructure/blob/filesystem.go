package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStore keeps logo blobs as flat files under a single directory.
type FilesystemStore struct {
	dir string
}

func NewFilesystemStore(dir string) (*FilesystemStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("blob directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}

	return &FilesystemStore{dir: dir}, nil
}

func (s *FilesystemStore) Save(_ context.Context, filename string, content []byte) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", filename, err)
	}

	return nil
}

func (s *FilesystemStore) Delete(_ context.Context, filename string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob %s: %w", filename, err)
	}

	return nil
}

// path rejects names that would escape the store directory.
func (s *FilesystemStore) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid blob name %q", filename)
	}

	return filepath.Join(s.dir, filename), nil
}
