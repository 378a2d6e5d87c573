package storage

import (
	"context"
	"io"
)

// ObjectStorage is the boundary to the external blob store. Put returns the
// public URL of the stored object; Delete removes every listed URL in one
// call; List enumerates object URLs under a key prefix.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader) (string, error)
	Delete(ctx context.Context, urls ...string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
