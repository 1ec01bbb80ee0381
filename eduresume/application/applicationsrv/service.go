package applicationsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/application"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening/jobopeningsrv"
	"github.com/Abraxas-365/eduresume/eduresume/resume/resumesrv"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/Abraxas-365/eduresume/pkg/logx"
	"github.com/google/uuid"
)

// Service manages job applications.
type Service struct {
	repo    application.Repository
	resumes *resumesrv.Service
	jobs    *jobopeningsrv.Service
}

func NewService(repo application.Repository, resumes *resumesrv.Service, jobs *jobopeningsrv.Service) *Service {
	return &Service{
		repo:    repo,
		resumes: resumes,
		jobs:    jobs,
	}
}

// Create submits the caller's resume to an open job. The resume must belong
// to the caller and the job must still be accepting applications.
func (s *Service) Create(ctx context.Context, userID kernel.UserID, req *application.CreateApplicationRequest) (*application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.resumes.GetOwned(ctx, userID, req.ResumeID); err != nil {
		return nil, err
	}

	job, err := s.jobs.Get(ctx, req.JobOpeningID)
	if err != nil {
		return nil, err
	}
	if !job.IsOpen() {
		return nil, jobopening.ErrJobNotOpen()
	}

	if exists, err := s.repo.ExistsForJob(ctx, userID, req.JobOpeningID); err != nil {
		return nil, err
	} else if exists {
		return nil, application.ErrAlreadyApplied()
	}

	now := time.Now()
	a := &application.Application{
		ID:           kernel.ApplicationID(uuid.New().String()),
		UserID:       userID,
		ResumeID:     req.ResumeID,
		JobOpeningID: req.JobOpeningID,
		Status:       application.StatusApplied,
		CoverLetter:  req.CoverLetter,
		AppliedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	logx.Infof("application %s: user %s applied to job %s", a.ID, userID, job.ID)
	return a, nil
}

// Get returns one application. Students see only their own; professors and
// admins see all.
func (s *Service) Get(ctx context.Context, userID kernel.UserID, role kernel.Role, id kernel.ApplicationID) (*application.Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == kernel.RoleStudent && !a.IsOwnedBy(userID) {
		return nil, application.ErrForbidden()
	}
	return a, nil
}

// List returns the caller's applications, newest first.
func (s *Service) List(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[application.Application], error) {
	return s.repo.ListByUser(ctx, userID, opts)
}

// UpdateStatus moves an application through review. Reviewer-side operation.
func (s *Service) UpdateStatus(ctx context.Context, id kernel.ApplicationID, req *application.UpdateStatusRequest) (*application.Application, error) {
	if !req.Status.IsValid() {
		return nil, application.ErrInvalidInput("unknown status")
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Status = req.Status
	if req.Feedback != "" {
		a.Feedback = req.Feedback
	}
	if req.Result != "" {
		a.Result = req.Result
	}
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete withdraws an application. Only the owner may withdraw.
func (s *Service) Delete(ctx context.Context, userID kernel.UserID, role kernel.Role, id kernel.ApplicationID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role == kernel.RoleStudent && !a.IsOwnedBy(userID) {
		return application.ErrForbidden()
	}
	return s.repo.Delete(ctx, id)
}
