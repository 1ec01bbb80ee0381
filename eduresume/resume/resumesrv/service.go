package resumesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/resume"
	"github.com/Abraxas-365/eduresume/eduresume/template/templatesrv"
	"github.com/Abraxas-365/eduresume/internal/pdf"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/Abraxas-365/eduresume/pkg/logx"
	"github.com/google/uuid"
)

// Service manages student resumes.
type Service struct {
	repo      resume.Repository
	templates *templatesrv.Service
}

func NewService(repo resume.Repository, templates *templatesrv.Service) *Service {
	return &Service{
		repo:      repo,
		templates: templates,
	}
}

// Create starts a resume, optionally seeded from a template. When a template
// is given, its PDF text drives the section tabs; extraction trouble falls
// back to the default section set rather than failing the creation.
func (s *Service) Create(ctx context.Context, userID kernel.UserID, req *resume.CreateResumeRequest) (*resume.CreateResumeResponse, error) {
	title := req.Title
	sections := resume.DefaultSections()
	var meta *resume.TemplateMeta

	if !req.TemplateID.IsEmpty() {
		tpl, data, err := s.templates.DownloadBuffer(ctx, req.TemplateID)
		if err != nil {
			return nil, err
		}

		meta = &resume.TemplateMeta{Name: tpl.Name, Description: tpl.Description}
		if title == "" {
			title = tpl.Name + " – Resume"
		}

		if text, err := pdf.ExtractText(data); err != nil {
			logx.Warnf("resume: section derivation skipped for template %s: %v", tpl.ID, err)
		} else {
			sections = resume.DeriveSections(text)
		}
	}

	if title == "" {
		return nil, resume.ErrInvalidInput("title is required when no template is given")
	}

	now := time.Now()
	entity := &resume.Resume{
		ID:         kernel.ResumeID(uuid.New().String()),
		UserID:     userID,
		TemplateID: req.TemplateID,
		Title:      title,
		Content:    resume.EmptyContent(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return &resume.CreateResumeResponse{
		Resume:       entity,
		TemplateMeta: meta,
		Sections:     sections,
	}, nil
}

// Get returns the editor view of a resume. Only the owner may read it.
func (s *Service) Get(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.ResumeDetails, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(userID) {
		return nil, resume.ErrForbidden()
	}

	sections := resume.DefaultSections()
	var meta *resume.TemplateMeta
	if !entity.TemplateID.IsEmpty() {
		if tpl, data, err := s.templates.DownloadBuffer(ctx, entity.TemplateID); err == nil {
			meta = &resume.TemplateMeta{Name: tpl.Name, Description: tpl.Description}
			if text, terr := pdf.ExtractText(data); terr == nil {
				sections = resume.DeriveSections(text)
			}
		}
	}

	return &resume.ResumeDetails{
		Resume:       entity,
		TemplateMeta: meta,
		Sections:     sections,
	}, nil
}

// GetOwned fetches a resume and enforces ownership, for cross-domain callers.
func (s *Service) GetOwned(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.Resume, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(userID) {
		return nil, resume.ErrForbidden()
	}
	return entity, nil
}

// List returns the caller's resumes, newest first.
func (s *Service) List(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[resume.Resume], error) {
	return s.repo.ListByUser(ctx, userID, opts)
}

// Update replaces the resume's title and content. Only the owner may write.
func (s *Service) Update(ctx context.Context, userID kernel.UserID, id kernel.ResumeID, req *resume.UpdateResumeRequest) (*resume.Resume, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(userID) {
		return nil, resume.ErrForbidden()
	}

	if req.Title != "" {
		entity.Title = req.Title
	}
	if req.Content != nil {
		entity.Content = *req.Content
	}
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// SetATSScore persists a freshly computed score on the resume.
func (s *Service) SetATSScore(ctx context.Context, id kernel.ResumeID, score int) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	entity.ATSScore = score
	entity.UpdatedAt = time.Now()
	return s.repo.Update(ctx, id, entity)
}

// SetPublished flips the published flag. Only the owner may publish.
func (s *Service) SetPublished(ctx context.Context, userID kernel.UserID, id kernel.ResumeID, published bool) (*resume.Resume, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(userID) {
		return nil, resume.ErrForbidden()
	}

	entity.Published = published
	entity.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes a resume. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !entity.IsOwnedBy(userID) {
		return resume.ErrForbidden()
	}
	return s.repo.Delete(ctx, id)
}
