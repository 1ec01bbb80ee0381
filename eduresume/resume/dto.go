package resume

import "github.com/Abraxas-365/eduresume/pkg/kernel"

// CreateResumeRequest starts a resume, optionally from a template.
type CreateResumeRequest struct {
	TemplateID kernel.TemplateID `json:"templateId"`
	Title      string            `json:"title"`
}

// TemplateMeta is the slice of template metadata echoed back on creation.
type TemplateMeta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateResumeResponse returns the new resume plus the section tabs the
// frontend should render.
type CreateResumeResponse struct {
	Resume       *Resume       `json:"resume"`
	TemplateMeta *TemplateMeta `json:"templateMeta,omitempty"`
	Sections     []string      `json:"sections"`
}

// ResumeDetails is the read projection for the editor view.
type ResumeDetails struct {
	Resume       *Resume       `json:"resume"`
	TemplateMeta *TemplateMeta `json:"templateMeta,omitempty"`
	Sections     []string      `json:"sections"`
}

// UpdateResumeRequest replaces the structured content.
type UpdateResumeRequest struct {
	Title   string   `json:"title"`
	Content *Content `json:"content"`
}
