package jobopeningsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/jobopening"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/google/uuid"
)

// Service manages the job board.
type Service struct {
	repo jobopening.Repository
}

func NewService(repo jobopening.Repository) *Service {
	return &Service{repo: repo}
}

// Create posts a new opening. New postings start open.
func (s *Service) Create(ctx context.Context, req *jobopening.CreateJobOpeningRequest) (*jobopening.JobOpening, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = jobopening.JobTypeFullTime
	}

	now := time.Now()
	j := &jobopening.JobOpening{
		ID:                  kernel.JobOpeningID(uuid.New().String()),
		Title:               req.Title,
		Company:             req.Company,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Location:            req.Location,
		JobType:             jobType,
		SalaryRange:         req.SalaryRange,
		RequiredSkills:      req.RequiredSkills,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              jobopening.StatusOpen,
		Link:                req.Link,
		PostedAt:            now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Get returns one opening.
func (s *Service) Get(ctx context.Context, id kernel.JobOpeningID) (*jobopening.JobOpening, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOpen returns the public board: open jobs only, newest first.
func (s *Service) ListOpen(ctx context.Context, opts kernel.PaginationOptions) (kernel.Paginated[jobopening.JobOpening], error) {
	return s.repo.ListByStatus(ctx, jobopening.StatusOpen, opts)
}

// Update patches an opening.
func (s *Service) Update(ctx context.Context, id kernel.JobOpeningID, req *jobopening.UpdateJobOpeningRequest) (*jobopening.JobOpening, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Company != nil {
		j.Company = *req.Company
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Requirements != nil {
		j.Requirements = req.Requirements
	}
	if req.Responsibilities != nil {
		j.Responsibilities = req.Responsibilities
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.JobType != nil {
		if !req.JobType.IsValid() {
			return nil, jobopening.ErrInvalidInput("unknown job type")
		}
		j.JobType = *req.JobType
	}
	if req.SalaryRange != nil {
		j.SalaryRange = *req.SalaryRange
	}
	if req.RequiredSkills != nil {
		j.RequiredSkills = req.RequiredSkills
	}
	if req.ApplicationDeadline != nil {
		j.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, jobopening.ErrInvalidInput("unknown status")
		}
		j.Status = *req.Status
	}
	if req.Link != nil {
		j.Link = *req.Link
	}
	j.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Delete removes an opening.
func (s *Service) Delete(ctx context.Context, id kernel.JobOpeningID) error {
	return s.repo.Delete(ctx, id)
}
