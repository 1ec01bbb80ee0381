package jobopening

import "time"

// CreateJobOpeningRequest carries a new posting.
type CreateJobOpeningRequest struct {
	Title               string      `json:"title"`
	Company             string      `json:"company"`
	Description         string      `json:"description"`
	Requirements        []string    `json:"requirements"`
	Responsibilities    []string    `json:"responsibilities"`
	Location            string      `json:"location"`
	JobType             JobType     `json:"jobType"`
	SalaryRange         SalaryRange `json:"salaryRange"`
	RequiredSkills      []string    `json:"requiredSkills"`
	ApplicationDeadline *time.Time  `json:"applicationDeadline,omitempty"`
	Link                string      `json:"link"`
}

func (r *CreateJobOpeningRequest) Validate() error {
	if r.Title == "" {
		return ErrInvalidInput("title is required")
	}
	if r.Company == "" {
		return ErrInvalidInput("company is required")
	}
	if r.JobType != "" && !r.JobType.IsValid() {
		return ErrInvalidInput("unknown job type")
	}
	return nil
}

// UpdateJobOpeningRequest patches an existing posting. Nil fields are left
// unchanged.
type UpdateJobOpeningRequest struct {
	Title               *string      `json:"title,omitempty"`
	Company             *string      `json:"company,omitempty"`
	Description         *string      `json:"description,omitempty"`
	Requirements        []string     `json:"requirements,omitempty"`
	Responsibilities    []string     `json:"responsibilities,omitempty"`
	Location            *string      `json:"location,omitempty"`
	JobType             *JobType     `json:"jobType,omitempty"`
	SalaryRange         *SalaryRange `json:"salaryRange,omitempty"`
	RequiredSkills      []string     `json:"requiredSkills,omitempty"`
	ApplicationDeadline *time.Time   `json:"applicationDeadline,omitempty"`
	Status              *Status      `json:"status,omitempty"`
	Link                *string      `json:"link,omitempty"`
}
