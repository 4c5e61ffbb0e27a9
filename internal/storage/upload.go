package storage

import "io"

// FileUpload is an incoming file as the API layer hands it to services:
// name, MIME type and content stream. Services push it through a FileStore
// and work with the resulting URL.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}
