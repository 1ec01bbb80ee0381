package description

import "github.com/Abraxas-365/eduresume/pkg/kernel"

// GenerateRequest asks for resume bullet points. At least one of Brief or
// Points must be supplied.
type GenerateRequest struct {
	Type    Kind     `json:"type"`
	Brief   string   `json:"brief"`
	Points  []string `json:"points"`
	Context string   `json:"context"`
}

func (r *GenerateRequest) Validate() error {
	if !r.Type.IsValid() {
		return ErrInvalidInput(`type must be "job" or "project"`)
	}
	if r.Brief == "" && len(r.Points) == 0 {
		return ErrInvalidInput("provide brief or points")
	}
	return nil
}

// GenerateResponse echoes the stored record's essentials.
type GenerateResponse struct {
	DescriptionID kernel.DescriptionID `json:"descriptionId"`
	GeneratedText string               `json:"generatedText"`
	Type          Kind                 `json:"type"`
}
