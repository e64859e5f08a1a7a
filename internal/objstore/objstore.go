// Package objstore is the object-store adapter for the data lake. The
// Store interface is the minimal contract the pipeline needs: list by
// prefix, get, and put with HTTP and custom metadata. S3 (and
// S3-compatible stores) back production; Mem backs tests.
package objstore

import (
	"context"
	"time"
)

// ObjectInfo describes one listed object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Object is a fetched object with its metadata.
type Object struct {
	Key          string
	Body         []byte
	ContentType  string
	CacheControl string
	Metadata     map[string]string
}

// PutOptions carries the metadata written alongside an object.
type PutOptions struct {
	ContentType  string
	CacheControl string
	Metadata     map[string]string
}

// Store abstracts the object-store bucket holding the lake.
type Store interface {
	// List returns objects under prefix in lexicographic key order.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// Get fetches an object. A missing key returns (nil, nil).
	Get(ctx context.Context, key string) (*Object, error)

	// Put writes an object, overwriting any existing one.
	Put(ctx context.Context, key string, body []byte, opts PutOptions) error
}
