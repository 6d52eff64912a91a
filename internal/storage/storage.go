package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStorage stores blobs on the local filesystem under a base directory.
// Keys are slash-separated relative paths; Save returns the absolute path
// that gets persisted in the database.
type FileStorage struct {
	basePath string
}

// New creates a FileStorage rooted at basePath, creating it if needed.
func New(basePath string) (*FileStorage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage base path is empty")
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage path: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStorage{basePath: abs}, nil
}

// BasePath returns the absolute storage root.
func (s *FileStorage) BasePath() string {
	return s.basePath
}

// Save streams reader into the blob identified by key and returns the
// absolute path of the written file. Intermediate directories are created.
// Writes go through a fixed-size copy buffer.
func (s *FileStorage) Save(ctx context.Context, key string, reader io.Reader) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 1024)
	if _, err := io.CopyBuffer(file, reader, buf); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fullPath, nil
}

// Open opens the blob at the given absolute path for reading.
func (s *FileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Remove deletes the blob at the given absolute path. A missing blob (or an
// empty path, for artifacts that were never written) is not an error.
func (s *FileStorage) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// RemoveAll deletes every blob under the given key prefix. Used when a user
// account is deleted and its whole subtree goes away.
func (s *FileStorage) RemoveAll(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.RemoveAll(fullPath); err != nil {
		return fmt.Errorf("failed to remove directory: %w", err)
	}
	return nil
}
