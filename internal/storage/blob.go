package storage

import "io"

// BlobStore holds attachment content and image previews. Keys returned by
// Put are the handles the workspace tracks; Delete releases a handle so
// abandoned drafts do not accumulate blobs.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}
