package blobx

import (
	"context"
	"errors"
	"io"
	"sync"
)

// Store fronts a Bucket with the object-store contract: generated identifiers,
// all-or-nothing uploads, non-idempotent deletes. A Store starts uninitialized
// and must be bound to a bucket exactly once before use; the transition is
// irreversible for the process lifetime.
type Store struct {
	mu     sync.RWMutex
	bucket Bucket
}

// NewStore returns an uninitialized store. Every operation other than
// Initialize fails with NOT_INITIALIZED until Initialize has been called.
func NewStore() *Store {
	return &Store{}
}

// Initialize binds the store to its bucket. Calling it a second time fails.
func (s *Store) Initialize(bucket Bucket) error {
	if bucket == nil {
		return ErrNotInitialized().WithDetail("reason", "nil bucket")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bucket != nil {
		return ErrAlreadyInitialized()
	}
	s.bucket = bucket
	return nil
}

// Ready reports whether Initialize has been called.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bucket != nil
}

func (s *Store) ready() (Bucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bucket == nil {
		return nil, ErrNotInitialized()
	}
	return s.bucket, nil
}

// Upload streams r into the store under a freshly allocated identifier and
// returns the identifier once the bucket has confirmed durability. The
// operation is all-or-nothing from the caller's perspective: any stream error
// yields WRITE_FAILED and no identifier, though the backend may be left with
// an orphaned partial write (no sweep reconciles those).
func (s *Store) Upload(ctx context.Context, r io.Reader, filename string) (ObjectID, error) {
	bucket, err := s.ready()
	if err != nil {
		return "", err
	}

	id := NewObjectID()

	w, err := bucket.OpenUpload(ctx, id, filename)
	if err != nil {
		return "", ErrWriteFailed(err).WithDetail("filename", filename)
	}

	if _, err := io.Copy(w, r); err != nil {
		// Do not Close here: Close is the commit point. Abandoning the writer
		// leaves at most orphaned chunks, never a resolvable id.
		s.discard(ctx, bucket, id)
		return "", ErrWriteFailed(err).WithDetail("filename", filename)
	}

	if err := w.Close(); err != nil {
		s.discard(ctx, bucket, id)
		return "", ErrWriteFailed(err).WithDetail("filename", filename)
	}

	return id, nil
}

// discard is the best-effort cleanup after a failed upload. A failure here
// leaves an orphan, which the contract accepts.
func (s *Store) discard(ctx context.Context, bucket Bucket, id ObjectID) {
	_ = bucket.Remove(ctx, id)
}

// Download opens a readable stream over the stored bytes. The caller owns the
// returned reader and must close it.
func (s *Store) Download(ctx context.Context, id ObjectID) (io.ReadCloser, error) {
	bucket, err := s.ready()
	if err != nil {
		return nil, err
	}

	rc, err := bucket.OpenDownload(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoSuchObject) {
			return nil, ErrObjectNotFound().WithDetail("object_id", id.String())
		}
		return nil, ErrReadFailed(err).WithDetail("object_id", id.String())
	}
	return rc, nil
}

// DownloadBuffer drains the whole object into one contiguous buffer. Intended
// for small objects; a stream error mid-read yields READ_FAILED and no
// partial buffer.
func (s *Store) DownloadBuffer(ctx context.Context, id ObjectID) ([]byte, error) {
	rc, err := s.Download(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	buf, err := io.ReadAll(rc)
	if err != nil {
		return nil, ErrReadFailed(err).WithDetail("object_id", id.String())
	}
	return buf, nil
}

// Delete removes the stored object. Deleting twice fails the second time with
// NOT_FOUND; call sites that need idempotent semantics must treat NOT_FOUND
// as success themselves.
func (s *Store) Delete(ctx context.Context, id ObjectID) error {
	bucket, err := s.ready()
	if err != nil {
		return err
	}

	if err := bucket.Remove(ctx, id); err != nil {
		if errors.Is(err, ErrNoSuchObject) {
			return ErrObjectNotFound().WithDetail("object_id", id.String())
		}
		return ErrWriteFailed(err).WithDetail("object_id", id.String())
	}
	return nil
}
