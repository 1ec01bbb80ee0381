package feedback

import (
	"time"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Status of a feedback record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusReviewed:
		return true
	}
	return false
}

// SectionFeedback rates one resume section.
type SectionFeedback struct {
	SectionName string `json:"sectionName"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// Feedback is a professor's review of a student's resume.
type Feedback struct {
	ID                  kernel.FeedbackID `json:"id" db:"id"`
	ResumeID            kernel.ResumeID   `json:"resumeId" db:"resume_id"`
	StudentID           kernel.UserID     `json:"studentId" db:"student_id"`
	ProfessorID         kernel.UserID     `json:"professorId" db:"professor_id"`
	OverallRating       int               `json:"overallRating" db:"overall_rating"`
	Comments            string            `json:"comments" db:"comments"`
	Suggestions         []string          `json:"suggestions"`
	Strengths           []string          `json:"strengths"`
	AreasForImprovement []string          `json:"areasForImprovement"`
	Sections            []SectionFeedback `json:"sections"`
	Status              Status            `json:"status" db:"status"`
	CreatedAt           time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time         `json:"updatedAt" db:"updated_at"`
}

// IsAuthoredBy reports whether the feedback was written by the professor.
func (f *Feedback) IsAuthoredBy(professorID kernel.UserID) bool {
	return f.ProfessorID == professorID
}
