// Package storage holds uploaded photo bytes. Objects are addressed by a
// flat filename reference; there are no directories.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

var (
	ErrNotExist    = errors.New("storage: object does not exist")
	ErrInvalidName = errors.New("storage: invalid object name")
)

// BlobStore persists and serves opaque objects by name.
type BlobStore interface {
	// Put stores r under name. A failed Put leaves nothing behind.
	Put(ctx context.Context, name string, r io.Reader, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, *ObjectInfo, error)
	Delete(ctx context.Context, name string) error
}

type ObjectInfo struct {
	Size        int64
	ContentType string
}

// ValidateName rejects anything that is not a single path element.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// ContentTypeFor guesses a content type from the name's extension.
func ContentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
