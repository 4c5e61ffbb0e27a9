package storage

import (
	"context"
	"io"
)

// FileStore is the interface the workflow needs from file storage: submit
// a file, get back a stable URL. Upload mechanics (presigning, CDNs) stay
// behind this boundary.
type FileStore interface {
	// Save stores the file under the given key prefix and returns the
	// download URL for the stored object.
	Save(ctx context.Context, keyPrefix, filename, contentType string, r io.Reader) (string, error)

	// Delete removes a stored object by its URL.
	Delete(ctx context.Context, url string) error

	// Open opens a stored object for reading (used by the download handler).
	Open(key string) (io.ReadCloser, error)
}
