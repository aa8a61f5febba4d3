package storage

import (
	"context"
	"io"
	"time"
)

// ObjectInfo represents metadata about a stored object.
type ObjectInfo struct {
	Bucket       string    `json:"bucket"`
	ObjectName   string    `json:"object_name"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// UploadInput carries the data for an object upload.
type UploadInput struct {
	ObjectName   string
	OriginalName string
	ContentType  string
	Size         int64
	Reader       io.Reader
}

// Storage defines object storage operations for file attachments.
type Storage interface {
	// EnsureBucket creates the configured bucket if it does not exist.
	EnsureBucket(ctx context.Context) error

	// Upload stores an object and returns its metadata.
	Upload(ctx context.Context, input UploadInput) (ObjectInfo, error)

	// Download returns a reader for the object body plus its metadata.
	// The caller must close the reader.
	Download(ctx context.Context, objectName string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes an object. Deleting an absent object is a no-op.
	Delete(ctx context.Context, objectName string) error
}
