package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned when a reference does not resolve to a stored blob.
var ErrNotFound = errors.New("storage: blob not found")

// FileInfo contains metadata about a stored blob
type FileInfo struct {
	Name       string
	Reference  string
	Size       int64
	ModifiedAt time.Time
}

// Client defines the interface for media blob storage. Blobs are written
// under a kind prefix (covers, portraits, chapters, avatars, thumbnails)
// and addressed by the opaque reference returned from Store.
type Client interface {
	// Store writes content and returns a reference for later retrieval.
	// The filename is only used to carry the extension over.
	Store(ctx context.Context, kind, filename string, content io.Reader) (string, error)

	// Open retrieves the contents of a stored blob
	Open(ctx context.Context, reference string) (io.ReadCloser, error)

	// Delete removes a stored blob
	Delete(ctx context.Context, reference string) error

	// Exists checks whether a reference resolves to a stored blob
	Exists(ctx context.Context, reference string) (bool, error)

	// Stat retrieves blob metadata without reading content
	Stat(ctx context.Context, reference string) (*FileInfo, error)
}

// ValidReference reports whether a reference is safe to resolve.
// References are relative slash-separated paths with no traversal elements.
func ValidReference(reference string) bool {
	if reference == "" {
		return false
	}
	if strings.HasPrefix(reference, "/") || strings.Contains(reference, "\\") {
		return false
	}
	cleaned := path.Clean(reference)
	if cleaned != reference {
		return false
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return false
	}
	return true
}

// ReadAll is a helper that opens a reference and reads the full content.
func ReadAll(ctx context.Context, client Client, reference string) ([]byte, error) {
	reader, err := client.Open(ctx, reference)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}
