package feedback

import "github.com/Abraxas-365/eduresume/pkg/kernel"

// CreateFeedbackRequest is a professor's review submission.
type CreateFeedbackRequest struct {
	ResumeID            kernel.ResumeID   `json:"resumeId"`
	OverallRating       int               `json:"overallRating"`
	Comments            string            `json:"comments"`
	Suggestions         []string          `json:"suggestions"`
	Strengths           []string          `json:"strengths"`
	AreasForImprovement []string          `json:"areasForImprovement"`
	Sections            []SectionFeedback `json:"sections"`
}

func (r *CreateFeedbackRequest) Validate() error {
	if r.ResumeID.IsEmpty() {
		return ErrInvalidInput("resumeId is required")
	}
	if r.OverallRating < 1 || r.OverallRating > 5 {
		return ErrInvalidInput("overallRating must be between 1 and 5")
	}
	return nil
}

// UpdateFeedbackRequest patches an existing review. Nil fields are left
// unchanged.
type UpdateFeedbackRequest struct {
	OverallRating       *int              `json:"overallRating,omitempty"`
	Comments            *string           `json:"comments,omitempty"`
	Suggestions         []string          `json:"suggestions,omitempty"`
	Strengths           []string          `json:"strengths,omitempty"`
	AreasForImprovement []string          `json:"areasForImprovement,omitempty"`
	Sections            []SectionFeedback `json:"sections,omitempty"`
	Status              *Status           `json:"status,omitempty"`
}
