package description

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptJobWithEverything(t *testing.T) {
	prompt := BuildPrompt(&GenerateRequest{
		Type:    KindJob,
		Brief:   "Built a web app with React",
		Points:  []string{"React frontend", "Go backend"},
		Context: "Software Engineering Intern",
	})

	assert.True(t, strings.HasPrefix(prompt, "Generate a professional resume bullet point for job experience:"))
	assert.Contains(t, prompt, "Brief: Built a web app with React")
	assert.Contains(t, prompt, "• React frontend")
	assert.Contains(t, prompt, "• Go backend")
	assert.Contains(t, prompt, "Context: Software Engineering Intern")
	assert.True(t, strings.HasSuffix(prompt, "Be concise and professional."))
}

func TestBuildPromptProjectOmitsEmptyParts(t *testing.T) {
	prompt := BuildPrompt(&GenerateRequest{
		Type:   KindProject,
		Points: []string{"CLI tool in Go"},
	})

	assert.Contains(t, prompt, "for project:")
	assert.NotContains(t, prompt, "Brief:")
	assert.NotContains(t, prompt, "Context:")
	assert.Contains(t, prompt, "Key points:\n• CLI tool in Go")
}

func TestGenerateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateRequest
		wantErr bool
	}{
		{"valid brief only", GenerateRequest{Type: KindJob, Brief: "x"}, false},
		{"valid points only", GenerateRequest{Type: KindProject, Points: []string{"x"}}, false},
		{"missing both", GenerateRequest{Type: KindJob}, true},
		{"bad type", GenerateRequest{Type: "gig", Brief: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
