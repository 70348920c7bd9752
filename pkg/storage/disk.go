// Package storage abstracts file storage behind a Disk interface with
// local filesystem and S3 implementations. Used for product images.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a stored file does not exist.
var ErrNotFound = errors.New("storage: file not found")

// Disk stores and retrieves files by path.
type Disk interface {
	// Put writes content at path, overwriting any existing file.
	Put(ctx context.Context, path string, content io.Reader) error
	// Get opens the file at path. Caller closes the reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes the file at path. Missing files are not an error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether a file is stored at path.
	Exists(ctx context.Context, path string) (bool, error)
	// URL returns the public URL for the file at path.
	URL(path string) string
}
