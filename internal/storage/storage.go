// Package storage provides blob storage for uploaded team logos.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Store writes uploaded blobs and returns their public URL.
type Store interface {
	// Upload writes the blob under key and returns the URL it is served from.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// ObjectKey builds a collision-resistant object key for an uploaded file:
// the upload timestamp in milliseconds, a dash, and the sanitized original
// filename.
func ObjectKey(filename string) string {
	return objectKeyAt(time.Now(), filename)
}

func objectKeyAt(now time.Time, filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}
