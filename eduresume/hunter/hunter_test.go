package hunter

import (
	"testing"

	"github.com/Abraxas-365/eduresume/eduresume/jobopening"
	"github.com/Abraxas-365/eduresume/eduresume/resume"
	"github.com/stretchr/testify/assert"
)

func sampleResume() *resume.Resume {
	return &resume.Resume{
		Title: "Backend Developer Resume",
		Content: resume.Content{
			PersonalInfo: resume.PersonalInfo{Summary: "Backend developer with Go and PostgreSQL experience"},
			Skills:       []string{"Go", "PostgreSQL", "Docker"},
			Projects: []resume.Project{
				{Name: "Resume builder", Description: "REST API", Technologies: []string{"Redis"}},
			},
		},
	}
}

func TestScoreFullMatch(t *testing.T) {
	job := &jobopening.JobOpening{RequiredSkills: []string{"Go", "Docker"}}

	report := Score(sampleResume(), job)
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, []string{"Go", "Docker"}, report.Matched)
	assert.Empty(t, report.Missing)
}

func TestScorePartialMatch(t *testing.T) {
	job := &jobopening.JobOpening{
		RequiredSkills: []string{"Go", "Kubernetes"},
		Requirements:   []string{"Redis", "Kafka"},
	}

	report := Score(sampleResume(), job)
	assert.Equal(t, 50, report.Score)
	assert.Equal(t, []string{"Go", "Redis"}, report.Matched)
	assert.Equal(t, []string{"Kubernetes", "Kafka"}, report.Missing)
	assert.Equal(t, 4, report.Keywords)
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	job := &jobopening.JobOpening{RequiredSkills: []string{"POSTGRESQL", "docker"}}

	report := Score(sampleResume(), job)
	assert.Equal(t, 100, report.Score)
}

func TestScoreDeduplicatesKeywords(t *testing.T) {
	job := &jobopening.JobOpening{
		RequiredSkills: []string{"Go", "go"},
		Requirements:   []string{"GO"},
	}

	report := Score(sampleResume(), job)
	assert.Equal(t, 1, report.Keywords)
	assert.Equal(t, 100, report.Score)
}

func TestScoreNoKeywords(t *testing.T) {
	report := Score(sampleResume(), &jobopening.JobOpening{})
	assert.Equal(t, 0, report.Score)
	assert.Empty(t, report.Matched)
	assert.Empty(t, report.Missing)
}
