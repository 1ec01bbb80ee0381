package template

import (
	"time"

	"github.com/Abraxas-365/eduresume/pkg/blobx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Template is the metadata record for a professor-uploaded resume
// template. The PDF bytes themselves live in the binary object store
// under PDFObjectID.
type Template struct {
	ID          kernel.TemplateID `json:"id" db:"id"`
	Name        string            `json:"name" db:"name"`
	Description string            `json:"description" db:"description"`
	ProfessorID kernel.UserID     `json:"professorId" db:"professor_id"`
	PDFObjectID blobx.ObjectID    `json:"pdfObjectId" db:"pdf_object_id"`
	Pages       int               `json:"pages" db:"pages"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
}

// IsOwnedBy reports whether the template belongs to the given professor.
func (t *Template) IsOwnedBy(professorID kernel.UserID) bool {
	return t.ProfessorID == professorID
}
