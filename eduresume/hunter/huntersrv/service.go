package huntersrv

import (
	"context"

	"github.com/Abraxas-365/eduresume/eduresume/hunter"
	"github.com/Abraxas-365/eduresume/eduresume/jobopening/jobopeningsrv"
	"github.com/Abraxas-365/eduresume/eduresume/resume/resumesrv"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/Abraxas-365/eduresume/pkg/logx"
)

// Service matches resumes against job openings.
type Service struct {
	resumes *resumesrv.Service
	jobs    *jobopeningsrv.Service
}

func NewService(resumes *resumesrv.Service, jobs *jobopeningsrv.Service) *Service {
	return &Service{
		resumes: resumes,
		jobs:    jobs,
	}
}

// ATSScore computes the keyword score and stores it on the resume. The
// resume must belong to the caller.
func (s *Service) ATSScore(ctx context.Context, userID kernel.UserID, req *hunter.ScoreRequest) (*hunter.ScoreReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := s.resumes.GetOwned(ctx, userID, req.ResumeID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.Get(ctx, req.JobOpeningID)
	if err != nil {
		return nil, err
	}

	report := hunter.Score(r, job)

	if err := s.resumes.SetATSScore(ctx, r.ID, report.Score); err != nil {
		// The score itself is still valid; persistence is best effort.
		logx.Warnf("hunter: failed to store ats score on resume %s: %v", r.ID, err)
	}

	return &report, nil
}

// Analyze returns the score plus the job context for the analysis view.
func (s *Service) Analyze(ctx context.Context, userID kernel.UserID, req *hunter.ScoreRequest) (*hunter.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := s.resumes.GetOwned(ctx, userID, req.ResumeID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.Get(ctx, req.JobOpeningID)
	if err != nil {
		return nil, err
	}

	report := hunter.Score(r, job)

	return &hunter.AnalysisResponse{
		ResumeID:     r.ID,
		JobOpeningID: job.ID,
		JobTitle:     job.Title,
		Company:      job.Company,
		Report:       report,
	}, nil
}
