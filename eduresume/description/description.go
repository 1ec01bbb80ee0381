package description

import (
	"time"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Kind distinguishes what the generated text describes.
type Kind string

const (
	KindJob     Kind = "job"
	KindProject Kind = "project"
)

func (k Kind) IsValid() bool {
	return k == KindJob || k == KindProject
}

// Input is what the student supplied to the generator.
type Input struct {
	Brief   string   `json:"brief"`
	Points  []string `json:"points"`
	Context string   `json:"context"`
}

// Description is an immutable record of one generation: what was asked and
// what came back. Records are never updated after creation.
type Description struct {
	ID            kernel.DescriptionID `json:"id" db:"id"`
	UserID        kernel.UserID        `json:"userId" db:"user_id"`
	Kind          Kind                 `json:"type" db:"kind"`
	Input         Input                `json:"input"`
	GeneratedText string               `json:"generatedText" db:"generated_text"`
	CreatedAt     time.Time            `json:"createdAt" db:"created_at"`
}
