package blobx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadyStore(t *testing.T) (*Store, *MemoryBucket) {
	t.Helper()
	bucket := NewMemoryBucket()
	store := NewStore()
	require.NoError(t, store.Initialize(bucket))
	return store, bucket
}

func TestStoreRequiresInitialization(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Upload(ctx, bytes.NewReader([]byte("x")), "x.pdf")
	assert.True(t, errx.IsCode(err, CodeNotInitialized))

	_, err = store.Download(ctx, NewObjectID())
	assert.True(t, errx.IsCode(err, CodeNotInitialized))

	_, err = store.DownloadBuffer(ctx, NewObjectID())
	assert.True(t, errx.IsCode(err, CodeNotInitialized))

	err = store.Delete(ctx, NewObjectID())
	assert.True(t, errx.IsCode(err, CodeNotInitialized))
}

func TestStoreInitializeOnce(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Initialize(NewMemoryBucket()))
	err := store.Initialize(NewMemoryBucket())
	assert.True(t, errx.IsCode(err, CodeAlreadyInitialized))
	assert.True(t, store.Ready())
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	payload := []byte("TEMPLATE01")
	id, err := store.Upload(ctx, bytes.NewReader(payload), "t.pdf")
	require.NoError(t, err)
	require.False(t, id.IsEmpty())

	rc, err := store.Download(ctx, id)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloadBufferScenario(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	id, err := store.Upload(ctx, bytes.NewReader([]byte("TEMPLATE01")), "t.pdf")
	require.NoError(t, err)

	buf, err := store.DownloadBuffer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("TEMPLATE01"), buf)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.DownloadBuffer(ctx, id)
	assert.True(t, errx.IsCode(err, CodeObjectNotFound))
}

func TestUnknownIdentifier(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()
	id := NewObjectID()

	_, err := store.Download(ctx, id)
	assert.True(t, errx.IsCode(err, CodeObjectNotFound))

	err = store.Delete(ctx, id)
	assert.True(t, errx.IsCode(err, CodeObjectNotFound))
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	id, err := store.Upload(ctx, bytes.NewReader([]byte("payload")), "p.pdf")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	err = store.Delete(ctx, id)
	assert.True(t, errx.IsCode(err, CodeObjectNotFound))
}

func TestIdenticalUploadsGetDistinctIdentifiers(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()
	payload := []byte("same bytes")

	first, err := store.Upload(ctx, bytes.NewReader(payload), "same.pdf")
	require.NoError(t, err)
	second, err := store.Upload(ctx, bytes.NewReader(payload), "same.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	b1, err := store.DownloadBuffer(ctx, first)
	require.NoError(t, err)
	b2, err := store.DownloadBuffer(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, payload, b1)
	assert.Equal(t, payload, b2)

	require.NoError(t, store.Delete(ctx, first))

	// Deleting one leaves the other untouched.
	b2, err = store.DownloadBuffer(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, payload, b2)
}

type errReader struct{ err error }

func (r errReader) Read(p []byte) (int, error) { return 0, r.err }

func TestUploadStreamErrorYieldsNoIdentifier(t *testing.T) {
	store, bucket := newReadyStore(t)
	ctx := context.Background()

	id, err := store.Upload(ctx, errReader{err: errors.New("disk gone")}, "broken.pdf")
	assert.True(t, errx.IsCode(err, CodeWriteFailed))
	assert.True(t, id.IsEmpty())
	assert.Equal(t, 0, bucket.Len())
}

// failingWriteBucket wraps a bucket so every upload writer errors on Close,
// simulating a backend that refuses the commit.
type failingWriteBucket struct {
	Bucket
}

type failingWriter struct{ io.WriteCloser }

func (w failingWriter) Close() error { return errors.New("commit refused") }

func (b failingWriteBucket) OpenUpload(ctx context.Context, id ObjectID, filename string) (io.WriteCloser, error) {
	w, err := b.Bucket.OpenUpload(ctx, id, filename)
	if err != nil {
		return nil, err
	}
	return failingWriter{w}, nil
}

func TestUploadCommitFailure(t *testing.T) {
	inner := NewMemoryBucket()
	store := NewStore()
	require.NoError(t, store.Initialize(failingWriteBucket{inner}))

	id, err := store.Upload(context.Background(), bytes.NewReader([]byte("x")), "x.pdf")
	assert.True(t, errx.IsCode(err, CodeWriteFailed))
	assert.True(t, id.IsEmpty())
}

// failingReadCloser errors partway through a read.
type failingReadCloser struct {
	data []byte
	err  error
	pos  int
}

func (r *failingReadCloser) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, r.err
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *failingReadCloser) Close() error { return nil }

type failingReadBucket struct {
	Bucket
	err error
}

func (b failingReadBucket) OpenDownload(ctx context.Context, id ObjectID) (io.ReadCloser, error) {
	rc, err := b.Bucket.OpenDownload(ctx, id)
	if err != nil {
		return nil, err
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	return &failingReadCloser{data: data[:len(data)/2], err: b.err}, nil
}

func TestDownloadBufferNeverReturnsPartialData(t *testing.T) {
	inner := NewMemoryBucket()
	store := NewStore()
	require.NoError(t, store.Initialize(failingReadBucket{inner, errors.New("stream torn")}))
	ctx := context.Background()

	id, err := store.Upload(ctx, bytes.NewReader([]byte("0123456789")), "n.pdf")
	require.NoError(t, err)

	buf, err := store.DownloadBuffer(ctx, id)
	assert.True(t, errx.IsCode(err, CodeReadFailed))
	assert.Nil(t, buf)
}

func TestParseObjectID(t *testing.T) {
	id := NewObjectID()
	parsed, err := ParseObjectID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseObjectID("not-an-identifier")
	assert.True(t, errx.IsCode(err, CodeObjectNotFound))
}
