package blobx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Bucket keeps objects under <prefix>/<id> in an S3 bucket. S3 deletes are
// idempotent, so Remove probes the key first to preserve the store's
// non-idempotent delete contract.
type S3Bucket struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Bucket(client *s3.Client, bucket, prefix string) *S3Bucket {
	return &S3Bucket{client: client, bucket: bucket, prefix: prefix}
}

func (b *S3Bucket) key(id ObjectID) string {
	if b.prefix == "" {
		return string(id)
	}
	return b.prefix + "/" + string(id)
}

func (b *S3Bucket) OpenUpload(ctx context.Context, id ObjectID, filename string) (io.WriteCloser, error) {
	return &s3Upload{ctx: ctx, bucket: b, id: id, filename: filename}, nil
}

func (b *S3Bucket) OpenDownload(ctx context.Context, id ObjectID) (io.ReadCloser, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(id)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNoSuchObject
		}
		return nil, fmt.Errorf("get object %s: %w", id, err)
	}
	return out.Body, nil
}

func (b *S3Bucket) Remove(ctx context.Context, id ObjectID) error {
	_, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(id)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return ErrNoSuchObject
		}
		return fmt.Errorf("head object %s: %w", id, err)
	}

	_, err = b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(id)),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", id, err)
	}
	return nil
}

// s3Upload accumulates the payload and issues a single PutObject on Close.
type s3Upload struct {
	ctx      context.Context
	bucket   *S3Bucket
	id       ObjectID
	filename string
	buf      bytes.Buffer
	closed   bool
}

func (u *s3Upload) Write(p []byte) (int, error) {
	if u.closed {
		return 0, fmt.Errorf("write on closed s3 upload %s", u.id)
	}
	return u.buf.Write(p)
}

func (u *s3Upload) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true

	_, err := u.bucket.client.PutObject(u.ctx, &s3.PutObjectInput{
		Bucket:   aws.String(u.bucket.bucket),
		Key:      aws.String(u.bucket.key(u.id)),
		Body:     bytes.NewReader(u.buf.Bytes()),
		Metadata: map[string]string{"filename": u.filename},
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", u.id, err)
	}
	return nil
}
