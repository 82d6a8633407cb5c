package reports

import (
	"regexp"
	"strings"
)

// dimensionScorePattern matches a dimension heading (optionally behind an
// icon, "and" accepted for "&"), the "Score: <n>" line under it and the line
// after the score, which carries the dimension details.
func dimensionScorePattern(name string) *regexp.Regexp {
	words := strings.Fields(name)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w == "&" {
			parts = append(parts, `(?:&|and)`)
			continue
		}
		parts = append(parts, regexp.QuoteMeta(w))
	}
	heading := strings.Join(parts, `[ \t]*`)
	return regexp.MustCompile(`(?i)` + heading + `[^\n]*\n\s*Score[ \t]*:[^\d\n]*(\d+)[^\n]*(?:\n([^\n]*))?`)
}

// ParseReadiness extracts a ReadinessRecord from an AI readiness assessment.
// Missing fields and sections keep their defaults.
func ParseReadiness(text string) ReadinessRecord {
	text = normalizeText(text)
	rec := NewReadinessRecord()

	if n, ok := IntField(text, "Overall AI Readiness Score"); ok {
		rec.OverallScore = clampScore(n)
	}
	if v, ok := Field(text, "Maturity Level"); ok {
		rec.MaturityLevel = v
	}
	if v, ok := Field(text, "Description"); ok {
		rec.MaturityDescription = v
	}

	for _, d := range Dimensions {
		m := dimensionScorePattern(d.Name).FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if n, ok := atoi(m[1]); ok {
			rec.DimensionScores[d.Key] = clampScore(n)
		}
		if detail := strings.TrimSpace(m[2]); detail != "" {
			rec.DimensionDetails[d.Key] = detail
		}
	}

	if section, ok := Section(text, HeaderHighPriority, HeaderMediumPriority, HeaderLowPriority); ok {
		rec.Recommendations.High = ParseRecommendations(section)
	}
	if section, ok := Section(text, HeaderMediumPriority, HeaderLowPriority); ok {
		rec.Recommendations.Medium = ParseRecommendations(section)
	}
	return rec
}
