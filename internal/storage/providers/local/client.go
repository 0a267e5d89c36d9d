package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive/internal/storage"
)

// Client implements storage.Client on the local filesystem. Blobs live under
// a single root directory, one subdirectory per kind, with uuid filenames so
// uploads can never collide or overwrite each other.
type Client struct {
	root string
}

var _ storage.Client = (*Client)(nil)

// NewClient creates a local storage client rooted at the given directory.
// The directory is created if it does not exist.
func NewClient(root string) (*Client, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Client{root: root}, nil
}

// Root returns the base directory blobs are stored under.
func (c *Client) Root() string {
	return c.root
}

func (c *Client) Store(ctx context.Context, kind, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	kind = sanitizeKind(kind)
	if kind == "" {
		return "", fmt.Errorf("storage kind is required")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	reference := kind + "/" + uuid.NewString() + ext

	dir := filepath.Join(c.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", kind, err)
	}

	target := filepath.Join(c.root, filepath.FromSlash(reference))
	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to write blob content: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to close blob file: %w", err)
	}

	return reference, nil
}

func (c *Client) Open(ctx context.Context, reference string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := c.resolve(reference)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return file, nil
}

func (c *Client) Delete(ctx context.Context, reference string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := c.resolve(reference)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (c *Client) Exists(ctx context.Context, reference string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	target, err := c.resolve(reference)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat blob: %w", err)
	}
	return true, nil
}

func (c *Client) Stat(ctx context.Context, reference string) (*storage.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := c.resolve(reference)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat blob: %w", err)
	}

	return &storage.FileInfo{
		Name:       info.Name(),
		Reference:  reference,
		Size:       info.Size(),
		ModifiedAt: info.ModTime(),
	}, nil
}

// resolve maps a reference to an absolute path, rejecting traversal attempts.
func (c *Client) resolve(reference string) (string, error) {
	if !storage.ValidReference(reference) {
		return "", fmt.Errorf("invalid blob reference: %q", reference)
	}
	return filepath.Join(c.root, filepath.FromSlash(reference)), nil
}

// sanitizeKind keeps only characters safe for a directory name.
func sanitizeKind(kind string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(kind) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
