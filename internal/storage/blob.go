package storage

import "io"

// BlobStore abstracts the object store that question images land in.
// Callers address objects by key only; turning a key into a public URL is
// the upload service's concern.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}
