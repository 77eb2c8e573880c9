package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when no blob exists under the given name.
var ErrNotFound = errors.New("blob not found")

// Store is the opaque blob store behind uploads. The process holds exactly
// one handle, initialized at startup.
type Store interface {
	Put(ctx context.Context, name string, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, name string) (io.ReadCloser, string, int64, error)
}

// Default is the process-wide store handle.
var Default Store

func Init(store Store) {
	Default = store
}
