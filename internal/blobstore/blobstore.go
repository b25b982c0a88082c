package blobstore

import "context"

// Store is the remote blob-storage capability: write bytes under a bucket
// path and get back a publicly retrievable URL.
type Store interface {
	Upload(ctx context.Context, bucket, path string, body []byte, contentType string) (string, error)
}
