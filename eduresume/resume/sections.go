package resume

import (
	"regexp"
	"strings"
)

// Section keys in the order the frontend renders them as tabs.
const (
	SectionPersonalInfo   = "personalInfo"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// DefaultSections is used when a template PDF yields no recognizable headings.
func DefaultSections() []string {
	return []string{
		SectionPersonalInfo,
		SectionEducation,
		SectionExperience,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
	}
}

type headingGroup struct {
	key      string
	patterns []*regexp.Regexp
}

func mustHeadings(key string, exprs ...string) headingGroup {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?i)^(`+expr+`)\b`))
	}
	return headingGroup{key: key, patterns: patterns}
}

var headingGroups = []headingGroup{
	mustHeadings(SectionExperience,
		`work\s+experience`, `experience`, `professional\s+experience`,
		`employment\s+history`, `work\s+history`),
	mustHeadings(SectionEducation,
		`education`, `academic\s+background`, `academic\s+qualifications`,
		`educational\s+background`),
	mustHeadings(SectionSkills,
		`skills`, `technical\s+skills`, `key\s+skills`, `core\s+competencies`),
	mustHeadings(SectionProjects,
		`projects`, `personal\s+projects`, `academic\s+projects`,
		`selected\s+projects`),
	mustHeadings(SectionCertifications,
		`certifications?`, `licenses\s+and\s+certifications?`),
	mustHeadings(SectionPersonalInfo,
		`profile`, `summary`, `about\s+me`, `professional\s+summary`,
		`personal\s+information`),
}

// DeriveSections scans the template PDF's text for section headings and
// returns the matching section keys in document order. personalInfo is always
// present and always first. Text with no recognizable headings falls back to
// the default set minus certifications, matching the historical behavior for
// free-form templates.
func DeriveSections(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{SectionPersonalInfo, SectionEducation, SectionExperience, SectionSkills, SectionProjects}
	}

	detected := make([]string, 0, len(headingGroups))
	seen := make(map[string]bool)
	add := func(key string) {
		if !seen[key] {
			seen[key] = true
			detected = append(detected, key)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		for _, group := range headingGroups {
			for _, p := range group.patterns {
				if p.MatchString(line) {
					add(group.key)
					break
				}
			}
		}
	}

	// personalInfo leads regardless of where (or whether) it appeared.
	if !seen[SectionPersonalInfo] {
		detected = append([]string{SectionPersonalInfo}, detected...)
	} else if detected[0] != SectionPersonalInfo {
		rest := make([]string, 0, len(detected))
		for _, key := range detected {
			if key != SectionPersonalInfo {
				rest = append(rest, key)
			}
		}
		detected = append([]string{SectionPersonalInfo}, rest...)
	}

	if len(detected) == 1 {
		return []string{SectionPersonalInfo, SectionEducation, SectionExperience, SectionSkills, SectionProjects}
	}

	return detected
}
