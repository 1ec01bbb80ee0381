package template

import (
	"github.com/Abraxas-365/eduresume/pkg/blobx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// CreateTemplateRequest carries the metadata of a template upload. The
// PDF bytes arrive alongside as a multipart file part.
type CreateTemplateRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (r *CreateTemplateRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidInput("name is required")
	}
	return nil
}

// CreateTemplateResponse is returned after a successful upload.
type CreateTemplateResponse struct {
	ID          kernel.TemplateID `json:"id"`
	Name        string            `json:"name"`
	PDFObjectID blobx.ObjectID    `json:"pdfObjectId"`
	Pages       int               `json:"pages"`
}
