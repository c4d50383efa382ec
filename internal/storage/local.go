package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes blobs to a directory on disk. The application serves the
// directory itself under the configured base URL; it exists so development
// and tests do not need an S3 bucket.
type LocalStore struct {
	root    string
	baseURL string
}

// NewLocalStore creates a disk-backed store rooted at root. The directory is
// created if missing.
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload writes the blob under key and returns its public URL.
func (s *LocalStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// Keys are generated by ObjectKey, but never trust them with path traversal.
	name := filepath.Base(key)

	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
