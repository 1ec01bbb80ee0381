package blobx

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryBucket keeps objects in process memory. Used in tests and for local
// development without a database.
type MemoryBucket struct {
	mu      sync.RWMutex
	objects map[ObjectID][]byte
	names   map[ObjectID]string
}

func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{
		objects: make(map[ObjectID][]byte),
		names:   make(map[ObjectID]string),
	}
}

func (b *MemoryBucket) OpenUpload(ctx context.Context, id ObjectID, filename string) (io.WriteCloser, error) {
	return &memUpload{bucket: b, id: id, filename: filename}, nil
}

func (b *MemoryBucket) OpenDownload(ctx context.Context, id ObjectID) (io.ReadCloser, error) {
	b.mu.RLock()
	data, ok := b.objects[id]
	b.mu.RUnlock()
	if !ok {
		return nil, ErrNoSuchObject
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *MemoryBucket) Remove(ctx context.Context, id ObjectID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[id]; !ok {
		return ErrNoSuchObject
	}
	delete(b.objects, id)
	delete(b.names, id)
	return nil
}

// Len reports the number of stored objects.
func (b *MemoryBucket) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}

type memUpload struct {
	bucket   *MemoryBucket
	id       ObjectID
	filename string
	buf      bytes.Buffer
	closed   bool
}

func (u *memUpload) Write(p []byte) (int, error) {
	return u.buf.Write(p)
}

func (u *memUpload) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true

	u.bucket.mu.Lock()
	defer u.bucket.mu.Unlock()
	data := make([]byte, u.buf.Len())
	copy(data, u.buf.Bytes())
	u.bucket.objects[u.id] = data
	u.bucket.names[u.id] = u.filename
	return nil
}
