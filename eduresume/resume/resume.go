package resume

import (
	"time"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Resume is a student's working document. The structured content mirrors the
// section tabs the frontend renders; everything starts empty and is filled in
// through updates.
type Resume struct {
	ID         kernel.ResumeID   `json:"id" db:"id"`
	UserID     kernel.UserID     `json:"userId" db:"user_id"`
	TemplateID kernel.TemplateID `json:"templateId" db:"template_id"`
	Title      string            `json:"title" db:"title"`
	Content    Content           `json:"content"`
	ATSScore   int               `json:"atsScore" db:"ats_score"`
	Published  bool              `json:"published" db:"published"`
	CreatedAt  time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time         `json:"updatedAt" db:"updated_at"`
}

// IsOwnedBy reports whether the resume belongs to the given student.
func (r *Resume) IsOwnedBy(userID kernel.UserID) bool {
	return r.UserID == userID
}

// Content holds the structured resume sections.
type Content struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

// EmptyContent returns a content value with every section present but blank.
func EmptyContent() Content {
	return Content{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []string{},
		Certifications: []Certification{},
		Projects:       []Project{},
	}
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
	Links    []Link `json:"links"`
}

type Link struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Experience struct {
	Company          string     `json:"company"`
	Position         string     `json:"position"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	CurrentlyWorking bool       `json:"currentlyWorking"`
	Description      string     `json:"description"`
}

type Education struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Grade       string     `json:"grade"`
}

type Certification struct {
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	Date          *time.Time `json:"date,omitempty"`
	CredentialID  string     `json:"credentialId"`
	CredentialURL string     `json:"credentialUrl"`
}

type Project struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	Link         string     `json:"link"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}
