package service

import (
	"context"
	"io"
)

// BlobStore abstracts the external blob storage used for document uploads.
// No delete or versioning contract is assumed.
type BlobStore interface {
	// Store writes the content under the given key and returns a retrievable
	// URL. The write is all-or-nothing: a failed upload leaves no blob.
	Store(ctx context.Context, key, contentType string, content io.Reader) (string, error)
}
