package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no document exists at the requested path.
	ErrNotFound = errors.New("store: document not found")
	// ErrVersionConflict means the expected version token no longer matches
	// the stored document. The caller must re-read and retry.
	ErrVersionConflict = errors.New("store: version conflict")
)

// Version is the opaque revision token the store assigns on every write.
// An empty Version on Put means "create a new document".
type Version string

// Document is a stored blob plus the version token it was read at.
type Document struct {
	Content []byte
	Version Version
}

// Entry describes one object inside a directory listing.
type Entry struct {
	Name        string
	Path        string
	DownloadURL string
	Type        string
}

// Store is a key-value document store with optimistic concurrency.
// Every mutating call produces one commit in the backing repository;
// the message is a human-readable summary used for audit only.
type Store interface {
	Get(ctx context.Context, path string) (*Document, error)
	PutJSON(ctx context.Context, path string, v any, version Version, message string) (Version, error)
	PutBlob(ctx context.Context, path, contentBase64, message string) (Version, error)
	Delete(ctx context.Context, path string, version Version, message string) error
	List(ctx context.Context, dir string) ([]Entry, error)
}
