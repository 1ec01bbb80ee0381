package application

import "github.com/Abraxas-365/eduresume/pkg/kernel"

// CreateApplicationRequest submits a resume to a job opening.
type CreateApplicationRequest struct {
	ResumeID     kernel.ResumeID     `json:"resumeId"`
	JobOpeningID kernel.JobOpeningID `json:"jobOpeningId"`
	CoverLetter  string              `json:"coverLetter"`
}

func (r *CreateApplicationRequest) Validate() error {
	if r.ResumeID.IsEmpty() {
		return ErrInvalidInput("resumeId is required")
	}
	if r.JobOpeningID.IsEmpty() {
		return ErrInvalidInput("jobOpeningId is required")
	}
	return nil
}

// UpdateStatusRequest moves an application through review.
type UpdateStatusRequest struct {
	Status   Status `json:"status"`
	Feedback string `json:"feedback"`
	Result   string `json:"result"`
}
