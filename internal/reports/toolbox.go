package reports

import "strings"

// ParseToolbox extracts a ToolboxRecord from a toolbox recommendation report.
// Missing fields and sections keep their defaults.
func ParseToolbox(text string) ToolboxRecord {
	text = normalizeText(text)
	rec := NewToolboxRecord()

	if n, ok := IntField(text, "AI Readiness Score"); ok {
		rec.ReadinessScore = n
	}
	if v, ok := Field(text, "Industry"); ok {
		rec.Industry = v
	}
	if v, ok := Field(text, "Company Size"); ok {
		rec.CompanySize = v
	}
	for _, label := range []string{"Budget", "Budget Range"} {
		if v, ok := currencyField(text, label); ok {
			rec.BudgetRange = v
			break
		}
	}

	if section, ok := Section(text, HeaderImplementationGuidance,
		HeaderRecommendedTools, HeaderBudgetPlanning, HeaderNextSteps); ok {
		rec.ImplementationGuidance = strings.TrimSpace(section)
	}
	if section, ok := Section(text, HeaderRecommendedTools, HeaderBudgetPlanning, HeaderNextSteps); ok {
		rec.RecommendedTools = ParseTools(section)
	}
	if section, ok := Section(text, HeaderNextSteps); ok {
		rec.NextSteps = NumberedLines(section)
	}
	return rec
}
