package application

import (
	"time"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Status tracks an application through review.
type Status string

const (
	StatusApplied     Status = "applied"
	StatusUnderReview Status = "under-review"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusUnderReview, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application ties a student's resume to a job opening.
type Application struct {
	ID            kernel.ApplicationID `json:"id" db:"id"`
	UserID        kernel.UserID        `json:"userId" db:"user_id"`
	ResumeID      kernel.ResumeID      `json:"resumeId" db:"resume_id"`
	JobOpeningID  kernel.JobOpeningID  `json:"jobOpeningId" db:"job_opening_id"`
	Status        Status               `json:"status" db:"status"`
	CoverLetter   string               `json:"coverLetter" db:"cover_letter"`
	Score         int                  `json:"score" db:"score"`
	Feedback      string               `json:"feedback" db:"feedback"`
	InterviewDate *time.Time           `json:"interviewDate,omitempty" db:"interview_date"`
	Result        string               `json:"result" db:"result"`
	AppliedAt     time.Time            `json:"appliedAt" db:"applied_at"`
	CreatedAt     time.Time            `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time            `json:"updatedAt" db:"updated_at"`
}

// IsOwnedBy reports whether the application belongs to the given student.
func (a *Application) IsOwnedBy(userID kernel.UserID) bool {
	return a.UserID == userID
}
