package hunter

import "github.com/Abraxas-365/eduresume/pkg/kernel"

// ScoreRequest asks for the ATS score of one resume against one job.
type ScoreRequest struct {
	ResumeID     kernel.ResumeID     `json:"resumeId"`
	JobOpeningID kernel.JobOpeningID `json:"jobId"`
}

func (r *ScoreRequest) Validate() error {
	if r.ResumeID.IsEmpty() {
		return ErrInvalidInput("resumeId is required")
	}
	if r.JobOpeningID.IsEmpty() {
		return ErrInvalidInput("jobId is required")
	}
	return nil
}

// AnalysisResponse is the full breakdown for the analysis view.
type AnalysisResponse struct {
	ResumeID     kernel.ResumeID     `json:"resumeId"`
	JobOpeningID kernel.JobOpeningID `json:"jobId"`
	JobTitle     string              `json:"jobTitle"`
	Company      string              `json:"company"`
	Report       ScoreReport         `json:"report"`
}
