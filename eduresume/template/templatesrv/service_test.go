package templatesrv

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/template"
	"github.com/Abraxas-365/eduresume/pkg/blobx"
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTemplateRepo struct {
	mu        sync.Mutex
	templates map[kernel.TemplateID]*template.Template
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: make(map[kernel.TemplateID]*template.Template)}
}

func (r *memTemplateRepo) Create(_ context.Context, t *template.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.templates[t.ID] = &cp
	return nil
}

func (r *memTemplateRepo) GetByID(_ context.Context, id kernel.TemplateID) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return nil, template.ErrTemplateNotFound()
	}
	cp := *t
	return &cp, nil
}

func (r *memTemplateRepo) List(_ context.Context, opts kernel.PaginationOptions) (kernel.Paginated[template.Template], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]template.Template, 0, len(r.templates))
	for _, t := range r.templates {
		items = append(items, *t)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return kernel.Paginated[template.Template]{
		Items: items,
		Page:  kernel.NewPage(opts, len(items)),
		Empty: len(items) == 0,
	}, nil
}

func (r *memTemplateRepo) ListByProfessor(ctx context.Context, professorID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[template.Template], error) {
	all, _ := r.List(ctx, opts)
	items := make([]template.Template, 0)
	for _, t := range all.Items {
		if t.ProfessorID == professorID {
			items = append(items, t)
		}
	}
	return kernel.Paginated[template.Template]{
		Items: items,
		Page:  kernel.NewPage(opts, len(items)),
		Empty: len(items) == 0,
	}, nil
}

func (r *memTemplateRepo) Delete(_ context.Context, id kernel.TemplateID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		return template.ErrTemplateNotFound()
	}
	delete(r.templates, id)
	return nil
}

func (r *memTemplateRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.templates)
}

// brokenRemoveBucket fails every Remove to simulate a backend outage.
type brokenRemoveBucket struct {
	blobx.Bucket
}

func (b *brokenRemoveBucket) Remove(context.Context, blobx.ObjectID) error {
	return errors.New("backend unavailable")
}

func setupService(t *testing.T, bucket blobx.Bucket) (*Service, *memTemplateRepo, *blobx.Store) {
	t.Helper()
	store := blobx.NewStore()
	require.NoError(t, store.Initialize(bucket))
	repo := newMemTemplateRepo()
	return NewService(repo, store), repo, store
}

func seedTemplate(t *testing.T, repo *memTemplateRepo, store *blobx.Store, owner kernel.UserID) *template.Template {
	t.Helper()
	ctx := context.Background()

	objectID, err := store.Upload(ctx, bytes.NewReader([]byte("%PDF-1.7 seed")), "seed.pdf")
	require.NoError(t, err)

	tpl := &template.Template{
		ID:          kernel.TemplateID("TPL-" + string(owner)),
		Name:        "Classic CV",
		Description: "Single column layout",
		ProfessorID: owner,
		PDFObjectID: objectID,
		Pages:       2,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, tpl))
	return tpl
}

func TestDeleteRemovesBlobAndMetadata(t *testing.T) {
	bucket := blobx.NewMemoryBucket()
	svc, repo, store := setupService(t, bucket)
	ctx := context.Background()

	tpl := seedTemplate(t, repo, store, "prof-1")
	require.Equal(t, 1, bucket.Len())

	err := svc.Delete(ctx, "prof-1", kernel.RoleProfessor, tpl.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, bucket.Len(), "pdf object should be gone")
	assert.Equal(t, 0, repo.count(), "metadata row should be gone")

	_, err = store.Download(ctx, tpl.PDFObjectID)
	assert.True(t, errx.IsCode(err, blobx.CodeObjectNotFound))
}

func TestDeleteByNonOwnerIsForbidden(t *testing.T) {
	bucket := blobx.NewMemoryBucket()
	svc, repo, store := setupService(t, bucket)
	ctx := context.Background()

	tpl := seedTemplate(t, repo, store, "prof-1")

	err := svc.Delete(ctx, "prof-2", kernel.RoleProfessor, tpl.ID)
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, template.CodeForbidden))

	// Nothing was touched.
	assert.Equal(t, 1, bucket.Len())
	assert.Equal(t, 1, repo.count())
}

func TestDeleteByAdminBypassesOwnership(t *testing.T) {
	bucket := blobx.NewMemoryBucket()
	svc, repo, store := setupService(t, bucket)
	ctx := context.Background()

	tpl := seedTemplate(t, repo, store, "prof-1")

	err := svc.Delete(ctx, "admin-1", kernel.RoleAdmin, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, repo.count())
}

func TestDeleteWithBlobGoneOutOfBand(t *testing.T) {
	bucket := blobx.NewMemoryBucket()
	svc, repo, store := setupService(t, bucket)
	ctx := context.Background()

	tpl := seedTemplate(t, repo, store, "prof-1")

	// Simulate an operator removing the object behind the store's back.
	require.NoError(t, store.Delete(ctx, tpl.PDFObjectID))

	err := svc.Delete(ctx, "prof-1", kernel.RoleProfessor, tpl.ID)
	require.NoError(t, err, "missing blob should not block the delete")
	assert.Equal(t, 0, repo.count())
}

func TestDeleteAbortsWhenBlobDeleteFails(t *testing.T) {
	inner := blobx.NewMemoryBucket()
	svc, repo, store := setupService(t, &brokenRemoveBucket{Bucket: inner})
	ctx := context.Background()

	tpl := seedTemplate(t, repo, store, "prof-1")

	err := svc.Delete(ctx, "prof-1", kernel.RoleProfessor, tpl.ID)
	require.Error(t, err)

	// Metadata must survive so the template is still resolvable.
	got, err := repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.PDFObjectID, got.PDFObjectID)
}

func TestDeleteUnknownTemplate(t *testing.T) {
	svc, _, _ := setupService(t, blobx.NewMemoryBucket())

	err := svc.Delete(context.Background(), "prof-1", kernel.RoleProfessor, "missing")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, template.CodeNotFound))
}

func TestDownloadStreamsStoredBytes(t *testing.T) {
	bucket := blobx.NewMemoryBucket()
	svc, repo, store := setupService(t, bucket)
	ctx := context.Background()

	tpl := seedTemplate(t, repo, store, "prof-1")

	got, data, err := svc.DownloadBuffer(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, got.ID)
	assert.Equal(t, []byte("%PDF-1.7 seed"), data)
}
