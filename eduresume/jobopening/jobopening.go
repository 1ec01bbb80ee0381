package jobopening

import (
	"time"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Status of an opening. Only open jobs are visible on the public board.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusFilled Status = "filled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusFilled:
		return true
	}
	return false
}

// JobType is the employment arrangement.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

func (j JobType) IsValid() bool {
	switch j {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// SalaryRange is the advertised compensation band.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// JobOpening is a position students can apply to.
type JobOpening struct {
	ID                  kernel.JobOpeningID `json:"id" db:"id"`
	Title               string              `json:"title" db:"title"`
	Company             string              `json:"company" db:"company"`
	Description         string              `json:"description" db:"description"`
	Requirements        []string            `json:"requirements"`
	Responsibilities    []string            `json:"responsibilities"`
	Location            string              `json:"location" db:"location"`
	JobType             JobType             `json:"jobType" db:"job_type"`
	SalaryRange         SalaryRange         `json:"salaryRange"`
	RequiredSkills      []string            `json:"requiredSkills"`
	ApplicationDeadline *time.Time          `json:"applicationDeadline,omitempty" db:"application_deadline"`
	Status              Status              `json:"status" db:"status"`
	Link                string              `json:"link" db:"link"`
	PostedAt            time.Time           `json:"postedAt" db:"posted_at"`
	CreatedAt           time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time           `json:"updatedAt" db:"updated_at"`
}

// IsOpen reports whether students can still apply.
func (j *JobOpening) IsOpen() bool {
	return j.Status == StatusOpen
}
