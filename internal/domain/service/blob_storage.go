package service

import "context"

// BlobObject is a stored file read back from the bucket.
type BlobObject struct {
	Data        []byte
	ContentType string
}

// BlobStorage persists uploaded media and returns their public URLs.
type BlobStorage interface {
	// Put writes data under key and returns the public URL of the object.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Get reads the object stored under key.
	Get(ctx context.Context, key string) (*BlobObject, error)

	// Delete removes the object stored under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
