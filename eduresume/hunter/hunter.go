package hunter

import (
	"strings"

	"github.com/Abraxas-365/eduresume/eduresume/jobopening"
	"github.com/Abraxas-365/eduresume/eduresume/resume"
)

// ScoreReport is the outcome of matching one resume against one job.
type ScoreReport struct {
	Score    int      `json:"score"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	Keywords int      `json:"keywords"`
}

// Score runs a case-insensitive keyword match between the job's required
// skills and requirements and the resume's text. Score is the matched share
// of keywords, 0-100. A job with no extractable keywords scores 0.
func Score(r *resume.Resume, job *jobopening.JobOpening) ScoreReport {
	keywords := collectKeywords(job)
	if len(keywords) == 0 {
		return ScoreReport{Matched: []string{}, Missing: []string{}}
	}

	haystack := strings.ToLower(resumeText(r))

	report := ScoreReport{
		Matched:  []string{},
		Missing:  []string{},
		Keywords: len(keywords),
	}
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			report.Matched = append(report.Matched, kw)
		} else {
			report.Missing = append(report.Missing, kw)
		}
	}

	report.Score = len(report.Matched) * 100 / len(keywords)
	return report
}

// collectKeywords gathers the job's skill keywords, deduplicated
// case-insensitively, preserving first-seen order and casing.
func collectKeywords(job *jobopening.JobOpening) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, len(job.RequiredSkills)+len(job.Requirements))

	add := func(raw string) {
		kw := strings.TrimSpace(raw)
		if kw == "" {
			return
		}
		key := strings.ToLower(kw)
		if !seen[key] {
			seen[key] = true
			keywords = append(keywords, kw)
		}
	}

	for _, s := range job.RequiredSkills {
		add(s)
	}
	for _, s := range job.Requirements {
		add(s)
	}
	return keywords
}

// resumeText flattens the searchable text of a resume.
func resumeText(r *resume.Resume) string {
	var b strings.Builder

	b.WriteString(r.Title)
	b.WriteString(" ")
	b.WriteString(r.Content.PersonalInfo.Summary)
	b.WriteString(" ")

	for _, s := range r.Content.Skills {
		b.WriteString(s)
		b.WriteString(" ")
	}
	for _, e := range r.Content.Experience {
		b.WriteString(e.Company + " " + e.Position + " " + e.Description + " ")
	}
	for _, e := range r.Content.Education {
		b.WriteString(e.Institution + " " + e.Degree + " " + e.Field + " ")
	}
	for _, c := range r.Content.Certifications {
		b.WriteString(c.Name + " " + c.Issuer + " ")
	}
	for _, p := range r.Content.Projects {
		b.WriteString(p.Name + " " + p.Description + " ")
		for _, tech := range p.Technologies {
			b.WriteString(tech)
			b.WriteString(" ")
		}
	}

	return b.String()
}
