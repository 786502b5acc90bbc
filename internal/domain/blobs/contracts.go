package blobs

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned when no object exists under a key
var ErrBlobNotFound = errors.New("blob not found")

// BlobConnector is an interface for interacting with object storage.
// Implementations exist for Azure Blob Storage, AWS S3 and the local filesystem.
type BlobConnector interface {
	// Upload stores data under key and returns the stored object's metadata.
	Upload(ctx context.Context, key string, data []byte, contentType string) (*Blob, error)

	// Download retrieves an object's content by key.
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete removes an object by key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
