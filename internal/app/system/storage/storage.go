// Package storage persists uploaded report photos and maps them to URLs.
//
// The core only ever sees the resulting URL; swapping the local-disk
// implementation for an object store does not touch the report lifecycle.
package storage

import (
	"context"
	"io"
)

// Store saves an uploaded file and returns the public URL it will be
// served from.
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (url string, err error)
}
