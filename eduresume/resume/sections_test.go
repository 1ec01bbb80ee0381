package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSectionsEmptyText(t *testing.T) {
	sections := DeriveSections("   \n\t")
	assert.Equal(t, []string{"personalInfo", "education", "experience", "skills", "projects"}, sections)
}

func TestDeriveSectionsDetectsHeadingsInOrder(t *testing.T) {
	text := "Jane Doe\nWork Experience\nAcme Corp\nEducation\nState University\nTechnical Skills\nGo, SQL\n"
	sections := DeriveSections(text)
	assert.Equal(t, []string{"personalInfo", "experience", "education", "skills"}, sections)
}

func TestDeriveSectionsPersonalInfoMovedToFront(t *testing.T) {
	text := "Projects\nResume builder\nProfessional Summary\nBackend developer\nCertifications\nAWS SAA\n"
	sections := DeriveSections(text)
	assert.Equal(t, "personalInfo", sections[0])
	assert.Contains(t, sections, "projects")
	assert.Contains(t, sections, "certifications")
}

func TestDeriveSectionsHeadingsAreCaseInsensitive(t *testing.T) {
	sections := DeriveSections("EDUCATION\nEMPLOYMENT HISTORY\n")
	assert.Equal(t, []string{"personalInfo", "education", "experience"}, sections)
}

func TestDeriveSectionsFallsBackWhenNothingDetected(t *testing.T) {
	sections := DeriveSections("lorem ipsum\ndolor sit amet\n")
	assert.Equal(t, []string{"personalInfo", "education", "experience", "skills", "projects"}, sections)
}

func TestDeriveSectionsNoDuplicates(t *testing.T) {
	text := "Experience\nWork Experience\nProfessional Experience\nSkills\n"
	sections := DeriveSections(text)
	count := 0
	for _, s := range sections {
		if s == SectionExperience {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
