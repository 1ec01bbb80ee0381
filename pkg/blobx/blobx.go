// Package blobx is the binary object store: opaque byte payloads addressed by
// store-generated identifiers, kept in a named bucket independent of the
// structured-record repositories.
package blobx

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
)

// ObjectID is an opaque handle for a stored object. It carries no semantic
// content; the string form is what crosses the API boundary.
type ObjectID string

// NewObjectID allocates a fresh identifier. Every upload gets its own id, so
// identical content uploaded twice yields two unrelated objects.
func NewObjectID() ObjectID {
	return ObjectID(uuid.NewString())
}

func ParseObjectID(s string) (ObjectID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", ErrObjectNotFound().WithDetail("object_id", s)
	}
	return ObjectID(s), nil
}

func (id ObjectID) String() string { return string(id) }
func (id ObjectID) IsEmpty() bool  { return string(id) == "" }

// ErrNoSuchObject is the sentinel buckets return when an id does not resolve.
// The Store translates it into the registered NotFound error.
var ErrNoSuchObject = errors.New("blobx: no such object")

// Bucket is a named partition of a storage backend. Implementations exist for
// Postgres (chunked rows), S3 and memory. A bucket write is only durable once
// the returned writer's Close has succeeded; anything left behind by an
// abandoned writer is an orphan the backend may keep indefinitely.
type Bucket interface {
	// OpenUpload returns a writer for a new object under id. The filename is
	// a display hint stored alongside the bytes.
	OpenUpload(ctx context.Context, id ObjectID, filename string) (io.WriteCloser, error)

	// OpenDownload returns a reader over the stored bytes. Returns
	// ErrNoSuchObject when id does not resolve.
	OpenDownload(ctx context.Context, id ObjectID) (io.ReadCloser, error)

	// Remove deletes the object. Returns ErrNoSuchObject when id does not
	// resolve; removal is not idempotent.
	Remove(ctx context.Context, id ObjectID) error
}
