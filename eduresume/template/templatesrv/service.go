package templatesrv

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/template"
	"github.com/Abraxas-365/eduresume/internal/pdf"
	"github.com/Abraxas-365/eduresume/pkg/blobx"
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/Abraxas-365/eduresume/pkg/logx"
	"github.com/google/uuid"
)

// Service coordinates template metadata with the binary object store.
//
// Uploads write the PDF to the store first and the metadata row second;
// a metadata failure after a successful upload leaves an orphaned blob,
// which is accepted (it can never be resolved through the API). Deletes
// run in the opposite order: blob first, metadata second, so a failed
// blob delete aborts the operation and keeps the record intact.
type Service struct {
	repo  template.Repository
	blobs *blobx.Store
}

func NewService(repo template.Repository, blobs *blobx.Store) *Service {
	return &Service{
		repo:  repo,
		blobs: blobs,
	}
}

// Create uploads a template PDF on behalf of a professor.
func (s *Service) Create(ctx context.Context, professorID kernel.UserID, req *template.CreateTemplateRequest, filename string, pdfData []byte) (*template.CreateTemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(pdfData) == 0 {
		return nil, template.ErrInvalidInput("pdf file is required")
	}

	pages, err := pdf.Inspect(pdfData)
	if err != nil {
		return nil, template.ErrInvalidPDF(err)
	}

	objectID, err := s.blobs.Upload(ctx, bytes.NewReader(pdfData), filename)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &template.Template{
		ID:          kernel.TemplateID(uuid.New().String()),
		Name:        req.Name,
		Description: req.Description,
		ProfessorID: professorID,
		PDFObjectID: objectID,
		Pages:       pages,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		// The blob is orphaned but unreachable: no metadata row will
		// ever hand out its id. Log it and surface the metadata error.
		logx.Errorf("template metadata insert failed, orphaned blob %s: %v", objectID, err)
		return nil, template.ErrStorageFailure(err)
	}

	logx.Infof("template %s created by professor %s (%d pages)", t.ID, professorID, pages)

	return &template.CreateTemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		PDFObjectID: t.PDFObjectID,
		Pages:       t.Pages,
	}, nil
}

// Get returns a single template's metadata.
func (s *Service) Get(ctx context.Context, id kernel.TemplateID) (*template.Template, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all templates, newest first. Listing is public: students
// browse templates without authentication.
func (s *Service) List(ctx context.Context, opts kernel.PaginationOptions) (kernel.Paginated[template.Template], error) {
	return s.repo.List(ctx, opts)
}

// ListByProfessor returns the templates owned by one professor.
func (s *Service) ListByProfessor(ctx context.Context, professorID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[template.Template], error) {
	return s.repo.ListByProfessor(ctx, professorID, opts)
}

// Download streams the template's PDF from the object store.
func (s *Service) Download(ctx context.Context, id kernel.TemplateID) (*template.Template, io.ReadCloser, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Download(ctx, t.PDFObjectID)
	if err != nil {
		return nil, nil, err
	}

	return t, rc, nil
}

// DownloadBuffer returns the template's full PDF bytes.
func (s *Service) DownloadBuffer(ctx context.Context, id kernel.TemplateID) (*template.Template, []byte, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.blobs.DownloadBuffer(ctx, t.PDFObjectID)
	if err != nil {
		return nil, nil, err
	}

	return t, data, nil
}

// Delete removes a template and its stored PDF. Only the owning
// professor (or an admin) may delete. The blob is removed first; if
// that fails for any reason other than the blob already being gone,
// the metadata row is left untouched and the error is returned.
func (s *Service) Delete(ctx context.Context, actor kernel.UserID, actorRole kernel.Role, id kernel.TemplateID) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !t.IsOwnedBy(actor) && actorRole != kernel.RoleAdmin {
		return template.ErrForbidden()
	}

	if err := s.blobs.Delete(ctx, t.PDFObjectID); err != nil {
		// A blob that vanished out of band does not block the delete.
		if errx.IsCode(err, blobx.CodeObjectNotFound) {
			logx.Warnf("template %s: pdf object %s already missing from store", id, t.PDFObjectID)
		} else {
			return err
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logx.Infof("template %s deleted by %s", id, actor)
	return nil
}
