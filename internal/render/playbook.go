package render

import (
	"fmt"
	"strings"
	"time"

	"playbook-backend/internal/reports"
)

const (
	maxKeyFeatures     = 5
	maxHighPriority    = 4
	maxMediumPriority  = 3
	scoreBarCells      = 20
	notAvailable       = "N/A"
	additionalPriority = ""
)

// Profile holds the strategic answers submitted with the two reports.
type Profile struct {
	PrimaryDriver string `json:"primaryDriver" yaml:"primaryDriver"`
	RiskTolerance string `json:"riskTolerance" yaml:"riskTolerance"`
	Timeline      string `json:"timeline" yaml:"timeline"`
	Leadership    string `json:"leadership" yaml:"leadership"`
}

// Input is everything a personalized playbook is built from.
type Input struct {
	CompanyName string
	Profile     Profile
	Readiness   reports.ReadinessRecord
	Toolbox     reports.ToolboxRecord
	GeneratedAt time.Time
}

// toolGroup is a heading in the toolkit chapter and the priority tag it
// collects. The additional group takes every tag not claimed by another group.
type toolGroup struct {
	heading  string
	priority string
}

var toolGroups = []toolGroup{
	{"Essential Tools", reports.PriorityEssential},
	{"Recommended Tools", reports.PriorityRecommended},
	{"Optional Tools", reports.PriorityOptional},
	{"Additional Tools", additionalPriority},
}

// Playbook lays out the personalized pages: cover, readiness profile,
// strategic profile, toolkit and action plan.
func Playbook(in Input) *Document {
	d := NewDocument()
	company := strings.TrimSpace(in.CompanyName)
	if company == "" {
		company = "Your Company"
	}
	generated := in.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	writeCover(d, company, generated)
	d.PageBreak()
	writeReadinessProfile(d, in.Readiness)
	d.PageBreak()
	writeStrategicProfile(d, company, in.Profile, in.Toolbox)
	d.PageBreak()
	writeToolkit(d, company, in.Toolbox.RecommendedTools)
	d.PageBreak()
	writeActionPlan(d, company, in.Toolbox.NextSteps, in.Readiness.Recommendations)
	return d
}

func writeCover(d *Document, company string, generated time.Time) {
	d.Centered("coverTitle", "Your Personalized\nAI Implementation Guide")
	d.Spacer()
	d.Centered("coverCompany", company)
	d.Spacer()
	d.Centered("body", "This personalized guide is based on your AI Readiness Assessment and "+
		"MESH AI Toolbox Recommendations. It provides customized insights, tool "+
		"recommendations, and an action plan tailored to your organization.")
	d.Spacer()
	d.Centered("note", "Powered by MESH")
	d.Centered("note", "whenwemesh.com")
	d.Centered("note", "Generated: "+generated.Format("January 02, 2006"))
}

func writeReadinessProfile(d *Document, r reports.ReadinessRecord) {
	d.Paragraph("chapter", "Your AI Readiness Profile")
	d.Paragraph("subsection", "Assessment Summary")
	d.Labeled("Overall Score:", fmt.Sprintf("%d/100", r.OverallScore))
	d.Labeled("Maturity Stage:", r.MaturityLevel)
	if r.MaturityDescription != "" {
		d.Paragraph("quote", quote(r.MaturityDescription))
	}

	d.Paragraph("section", "Your Dimension Scores")
	d.Paragraph("body", "Your assessment evaluated five critical dimensions of AI readiness. Here's how you scored:")
	for _, dim := range reports.Dimensions {
		score := r.DimensionScores[dim.Key]
		d.Paragraph("label", fmt.Sprintf("%s: %d/100", dim.Name, score))
		d.Paragraph("bar", ScoreBar(score))
		if detail := r.DimensionDetails[dim.Key]; detail != "" {
			d.Paragraph("body", detail)
		}
	}
}

func writeStrategicProfile(d *Document, company string, p Profile, t reports.ToolboxRecord) {
	d.Paragraph("chapter", "Your Strategic Profile")
	d.Paragraph("body", fmt.Sprintf("Based on the strategic questions you answered, here is %s's AI implementation profile:", company))

	d.Paragraph("subsection", "Company Overview")
	d.Bullet("body", "Industry: "+orNA(t.Industry))
	d.Bullet("body", "Company Size: "+orNA(t.CompanySize))
	d.Bullet("body", "Budget Range: "+orNA(t.BudgetRange))
	if p.Timeline != "" {
		d.Bullet("body", "Implementation Timeline: "+p.Timeline)
	}
	if p.PrimaryDriver != "" {
		d.Bullet("body", "Primary Driver: "+p.PrimaryDriver)
	}
	if p.RiskTolerance != "" {
		d.Bullet("body", "Risk Tolerance: "+p.RiskTolerance)
	}
	if p.Leadership != "" {
		d.Bullet("body", "Implementation Leadership: "+p.Leadership)
	}

	if t.ImplementationGuidance != "" {
		d.Paragraph("subsection", "Implementation Guidance")
		d.Paragraph("quote", quote(t.ImplementationGuidance))
	}
}

func writeToolkit(d *Document, company string, tools []reports.ToolEntry) {
	d.Paragraph("chapter", "Your Recommended AI Toolkit")
	d.Paragraph("body", fmt.Sprintf("Based on %s's profile, readiness score, and business objectives, we recommend "+
		"the following AI tools as your ideal starting point. These %d tools have been "+
		"selected to match your industry, budget, and implementation goals.", company, len(tools)))

	for _, g := range toolGroups {
		group := GroupTools(tools, g.priority)
		if len(group) == 0 {
			continue
		}
		d.Paragraph("subsection", g.heading)
		for _, tool := range group {
			writeTool(d, tool)
		}
	}
}

func writeTool(d *Document, t reports.ToolEntry) {
	d.Paragraph("toolName", t.Name)
	d.Paragraph("meta", fmt.Sprintf("Category: %s | Match Score: %d/100", orNA(t.Category), t.MatchScore))

	if len(t.WhyRecommend) > 0 {
		d.Paragraph("label", "Why We Recommend:")
		for _, reason := range t.WhyRecommend {
			d.Bullet("body", reason)
		}
	}
	if len(t.KeyFeatures) > 0 {
		d.Paragraph("label", "Key Features:")
		features := t.KeyFeatures
		if len(features) > maxKeyFeatures {
			features = features[:maxKeyFeatures]
		}
		for _, feature := range features {
			d.Bullet("body", feature)
		}
	}
	if len(t.Pricing) > 0 {
		d.Paragraph("label", "Pricing:")
		for _, price := range t.Pricing {
			d.Bullet("body", price)
		}
	}
	if t.Website != "" {
		d.Paragraph("link", "Website: "+t.Website)
	}
	d.Spacer()
}

func writeActionPlan(d *Document, company string, steps []string, recs reports.Recommendations) {
	d.Paragraph("chapter", "Your Personalized Action Plan")
	d.Paragraph("body", fmt.Sprintf("This action plan combines insights from your AI Readiness Assessment with the recommended tools "+
		"to create a clear roadmap for %s's AI implementation journey.", company))

	if len(steps) > 0 {
		d.Paragraph("section", "Immediate Next Steps")
		d.Paragraph("body", "Start your AI journey with these concrete actions:")
		for i, step := range steps {
			d.Numbered(i+1, step)
		}
	}

	if high := limit(recs.High, maxHighPriority); len(high) > 0 {
		d.Paragraph("section", "High Priority Recommendations")
		d.Paragraph("body", "Based on your assessment scores, these are the most critical areas to address:")
		for _, rec := range high {
			writeRecommendation(d, rec, true)
		}
	}
	if medium := limit(recs.Medium, maxMediumPriority); len(medium) > 0 {
		d.Paragraph("section", "Medium Priority Recommendations")
		d.Paragraph("body", "Once high-priority items are underway, focus on these areas:")
		for _, rec := range medium {
			writeRecommendation(d, rec, false)
		}
	}
}

func writeRecommendation(d *Document, rec reports.RecommendationItem, withActions bool) {
	title := rec.Title
	if rec.Dimension != "" {
		title += " (" + rec.Dimension + ")"
	}
	d.Paragraph("subsection", title)
	if rec.Description != "" {
		d.Paragraph("body", rec.Description)
	}
	if withActions && len(rec.ActionItems) > 0 {
		d.Paragraph("label", "Action Items:")
		for _, action := range rec.ActionItems {
			d.Bullet("body", action)
		}
	}
}

// GroupTools returns the tools tagged priority, in order. An empty priority
// selects every tool whose tag is not one of the known priorities.
func GroupTools(tools []reports.ToolEntry, priority string) []reports.ToolEntry {
	var out []reports.ToolEntry
	for _, t := range tools {
		tag := strings.ToUpper(strings.TrimSpace(t.Priority))
		if priority == additionalPriority {
			if tag != reports.PriorityEssential && tag != reports.PriorityRecommended && tag != reports.PriorityOptional {
				out = append(out, t)
			}
			continue
		}
		if tag == priority {
			out = append(out, t)
		}
	}
	return out
}

// ScoreBar draws score (0-100) as a fixed width bar of filled and empty cells.
func ScoreBar(score int) string {
	score = max(0, min(100, score))
	filled := score * scoreBarCells / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarCells-filled)
}

func limit(items []reports.RecommendationItem, n int) []reports.RecommendationItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func quote(s string) string {
	return `"` + s + `"`
}
