package blobx

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/jmoiron/sqlx"
)

// chunkSize mirrors the 255KiB chunking convention of document-database file
// buckets; large payloads never travel as a single row.
const chunkSize = 255 * 1024

// PostgresBucket stores objects as chunked rows. The file row is written last,
// on Close, so an id only resolves once the whole payload is durable; chunks
// of an abandoned upload stay behind as orphans.
type PostgresBucket struct {
	db   *sqlx.DB
	name string
}

// NewPostgresBucket creates a bucket scoped to name over the given connection.
func NewPostgresBucket(db *sqlx.DB, name string) *PostgresBucket {
	return &PostgresBucket{db: db, name: name}
}

// Migrate creates the backing tables when missing.
func (b *PostgresBucket) Migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS blob_files (
			bucket     TEXT        NOT NULL,
			id         TEXT        NOT NULL,
			filename   TEXT        NOT NULL,
			length     BIGINT      NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (bucket, id)
		);
		CREATE TABLE IF NOT EXISTS blob_chunks (
			bucket  TEXT    NOT NULL,
			file_id TEXT    NOT NULL,
			seq     INTEGER NOT NULL,
			data    BYTEA   NOT NULL,
			PRIMARY KEY (bucket, file_id, seq)
		);
	`
	if _, err := b.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate blob tables: %w", err)
	}
	return nil
}

func (b *PostgresBucket) OpenUpload(ctx context.Context, id ObjectID, filename string) (io.WriteCloser, error) {
	return &pgUpload{ctx: ctx, bucket: b, id: id, filename: filename}, nil
}

func (b *PostgresBucket) OpenDownload(ctx context.Context, id ObjectID) (io.ReadCloser, error) {
	var length int64
	query := `SELECT length FROM blob_files WHERE bucket = $1 AND id = $2`
	if err := b.db.GetContext(ctx, &length, query, b.name, string(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoSuchObject
		}
		return nil, fmt.Errorf("lookup blob %s: %w", id, err)
	}
	return &pgDownload{ctx: ctx, bucket: b, id: id, remaining: length}, nil
}

func (b *PostgresBucket) Remove(ctx context.Context, id ObjectID) error {
	res, err := b.db.ExecContext(ctx,
		`DELETE FROM blob_files WHERE bucket = $1 AND id = $2`, b.name, string(id))
	if err != nil {
		return fmt.Errorf("delete blob %s: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blob %s: %w", id, err)
	}
	if rows == 0 {
		return ErrNoSuchObject
	}

	if _, err := b.db.ExecContext(ctx,
		`DELETE FROM blob_chunks WHERE bucket = $1 AND file_id = $2`, b.name, string(id)); err != nil {
		return fmt.Errorf("delete blob chunks %s: %w", id, err)
	}
	return nil
}

// pgUpload buffers incoming bytes and flushes full chunks as it goes. The
// file row is only inserted by Close, which is the durability point.
type pgUpload struct {
	ctx      context.Context
	bucket   *PostgresBucket
	id       ObjectID
	filename string
	buf      []byte
	seq      int
	length   int64
	closed   bool
}

func (u *pgUpload) Write(p []byte) (int, error) {
	if u.closed {
		return 0, fmt.Errorf("write on closed blob upload %s", u.id)
	}
	u.buf = append(u.buf, p...)
	for len(u.buf) >= chunkSize {
		if err := u.flushChunk(u.buf[:chunkSize]); err != nil {
			return 0, err
		}
		u.buf = u.buf[chunkSize:]
	}
	return len(p), nil
}

func (u *pgUpload) flushChunk(data []byte) error {
	_, err := u.bucket.db.ExecContext(u.ctx,
		`INSERT INTO blob_chunks (bucket, file_id, seq, data) VALUES ($1, $2, $3, $4)`,
		u.bucket.name, string(u.id), u.seq, data)
	if err != nil {
		return fmt.Errorf("write blob chunk %s/%d: %w", u.id, u.seq, err)
	}
	u.seq++
	u.length += int64(len(data))
	return nil
}

func (u *pgUpload) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true

	if len(u.buf) > 0 {
		if err := u.flushChunk(u.buf); err != nil {
			return err
		}
		u.buf = nil
	}

	_, err := u.bucket.db.ExecContext(u.ctx,
		`INSERT INTO blob_files (bucket, id, filename, length, created_at) VALUES ($1, $2, $3, $4, $5)`,
		u.bucket.name, string(u.id), u.filename, u.length, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("commit blob %s: %w", u.id, err)
	}
	return nil
}

// pgDownload streams chunks back in sequence order, one query per chunk.
type pgDownload struct {
	ctx       context.Context
	bucket    *PostgresBucket
	id        ObjectID
	seq       int
	chunk     []byte
	remaining int64
	closed    bool
}

func (d *pgDownload) Read(p []byte) (int, error) {
	if d.closed {
		return 0, fmt.Errorf("read on closed blob download %s", d.id)
	}
	if len(d.chunk) == 0 {
		if d.remaining <= 0 {
			return 0, io.EOF
		}
		var data []byte
		query := `SELECT data FROM blob_chunks WHERE bucket = $1 AND file_id = $2 AND seq = $3`
		if err := d.bucket.db.GetContext(d.ctx, &data, query, d.bucket.name, string(d.id), d.seq); err != nil {
			if err == sql.ErrNoRows {
				return 0, fmt.Errorf("blob %s truncated at chunk %d", d.id, d.seq)
			}
			return 0, fmt.Errorf("read blob chunk %s/%d: %w", d.id, d.seq, err)
		}
		d.seq++
		d.chunk = data
		d.remaining -= int64(len(data))
	}

	n := copy(p, d.chunk)
	d.chunk = d.chunk[n:]
	return n, nil
}

func (d *pgDownload) Close() error {
	d.closed = true
	return nil
}
