package feedbacksrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/feedback"
	"github.com/Abraxas-365/eduresume/eduresume/resume"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/google/uuid"
)

// Service manages professor feedback on student resumes.
type Service struct {
	repo    feedback.Repository
	resumes resume.Repository
}

func NewService(repo feedback.Repository, resumes resume.Repository) *Service {
	return &Service{
		repo:    repo,
		resumes: resumes,
	}
}

// Create records a professor's review of a resume. The student is resolved
// from the resume itself, so feedback cannot be attached to someone else's
// document by mistake.
func (s *Service) Create(ctx context.Context, professorID kernel.UserID, req *feedback.CreateFeedbackRequest) (*feedback.Feedback, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	target, err := s.resumes.GetByID(ctx, req.ResumeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	f := &feedback.Feedback{
		ID:                  kernel.FeedbackID(uuid.New().String()),
		ResumeID:            req.ResumeID,
		StudentID:           target.UserID,
		ProfessorID:         professorID,
		OverallRating:       req.OverallRating,
		Comments:            req.Comments,
		Suggestions:         req.Suggestions,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		Sections:            req.Sections,
		Status:              feedback.StatusSubmitted,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Get returns one feedback record. Visible to its author, its recipient, and
// admins.
func (s *Service) Get(ctx context.Context, userID kernel.UserID, role kernel.Role, id kernel.FeedbackID) (*feedback.Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != kernel.RoleAdmin && f.StudentID != userID && f.ProfessorID != userID {
		return nil, feedback.ErrForbidden()
	}
	return f, nil
}

// ListByResume returns all feedback on one resume.
func (s *Service) ListByResume(ctx context.Context, resumeID kernel.ResumeID) ([]feedback.Feedback, error) {
	return s.repo.ListByResume(ctx, resumeID)
}

// ListForStudent returns the feedback addressed to the caller, newest first.
func (s *Service) ListForStudent(ctx context.Context, studentID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[feedback.Feedback], error) {
	return s.repo.ListByStudent(ctx, studentID, opts)
}

// Update patches a review. Only the authoring professor (or an admin) may
// change it.
func (s *Service) Update(ctx context.Context, userID kernel.UserID, role kernel.Role, id kernel.FeedbackID, req *feedback.UpdateFeedbackRequest) (*feedback.Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !f.IsAuthoredBy(userID) && role != kernel.RoleAdmin {
		return nil, feedback.ErrForbidden()
	}

	if req.OverallRating != nil {
		if *req.OverallRating < 1 || *req.OverallRating > 5 {
			return nil, feedback.ErrInvalidInput("overallRating must be between 1 and 5")
		}
		f.OverallRating = *req.OverallRating
	}
	if req.Comments != nil {
		f.Comments = *req.Comments
	}
	if req.Suggestions != nil {
		f.Suggestions = req.Suggestions
	}
	if req.Strengths != nil {
		f.Strengths = req.Strengths
	}
	if req.AreasForImprovement != nil {
		f.AreasForImprovement = req.AreasForImprovement
	}
	if req.Sections != nil {
		f.Sections = req.Sections
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, feedback.ErrInvalidInput("unknown status")
		}
		f.Status = *req.Status
	}
	f.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a review. Only the authoring professor (or an admin) may
// delete it.
func (s *Service) Delete(ctx context.Context, userID kernel.UserID, role kernel.Role, id kernel.FeedbackID) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !f.IsAuthoredBy(userID) && role != kernel.RoleAdmin {
		return feedback.ErrForbidden()
	}
	return s.repo.Delete(ctx, id)
}
