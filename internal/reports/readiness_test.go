package reports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParseReadiness_FullReport(t *testing.T) {
	rec := ParseReadiness(readFixture(t, "readiness_report.txt"))

	want := ReadinessRecord{
		OverallScore:        62,
		MaturityLevel:       "Developing",
		MaturityDescription: "You have started experimenting with AI but lack a coordinated approach.",
		DimensionScores: map[string]int{
			DimStrategyVision:   70,
			DimDataSystems:      48,
			DimPeopleSkills:     55,
			DimGovernanceEthics: 40,
			DimExecutionImpact:  65,
		},
		DimensionDetails: map[string]string{
			DimStrategyVision:   "Leadership sees AI as a priority and has named early use cases.",
			DimDataSystems:      "Data lives in disconnected systems with inconsistent quality.",
			DimPeopleSkills:     "A few champions exist but most teams need training.",
			DimGovernanceEthics: "No formal AI policy or review process is in place.",
			DimExecutionImpact:  "Pilots are running but results are not yet measured.",
		},
		Recommendations: Recommendations{
			High: []RecommendationItem{
				{
					Title:       "Establish AI Governance Framework",
					Dimension:   "Governance & Ethics",
					Description: "Define how AI tools are approved, monitored and retired. Assign an accountable owner.",
					ActionItems: []string{
						"Draft an acceptable use policy",
						"Create an AI review board",
						"Publish guidelines to all staff",
					},
				},
				{
					Title:       "Consolidate Core Data Sources",
					Dimension:   "Data & Systems",
					Description: "Bring customer and operations data into one governed store.",
					ActionItems: []string{"Inventory current data sources", "Pick a central warehouse"},
				},
			},
			Medium: []RecommendationItem{
				{
					Title:       "Launch AI Literacy Program",
					Dimension:   "People & Skills",
					Description: "Give every team a baseline understanding of AI capabilities.",
					ActionItems: []string{"Run monthly lunch and learns"},
				},
				{
					Title:       "Define Success Metrics",
					Dimension:   "Execution & Impact",
					Description: "Measure pilots against clear business outcomes.",
					ActionItems: []string{},
				},
			},
		},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("ParseReadiness mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReadiness_EmptyInputKeepsDefaults(t *testing.T) {
	rec := ParseReadiness("")

	assert.Equal(t, 0, rec.OverallScore)
	assert.Equal(t, "Exploring", rec.MaturityLevel)
	assert.Equal(t, "", rec.MaturityDescription)
	require.Len(t, rec.DimensionScores, len(Dimensions))
	for _, d := range Dimensions {
		score, ok := rec.DimensionScores[d.Key]
		assert.True(t, ok, "missing dimension %s", d.Key)
		assert.Equal(t, 0, score)
	}
	assert.Empty(t, rec.DimensionDetails)
	assert.NotNil(t, rec.Recommendations.High)
	assert.NotNil(t, rec.Recommendations.Medium)
	assert.Empty(t, rec.Recommendations.High)
	assert.Empty(t, rec.Recommendations.Medium)
}

func TestParseReadiness_DimensionKeysAlwaysPresent(t *testing.T) {
	rec := ParseReadiness("Data & Systems\nScore: 81\n")

	require.Len(t, rec.DimensionScores, 5)
	assert.Equal(t, 81, rec.DimensionScores[DimDataSystems])
	assert.Equal(t, 0, rec.DimensionScores[DimStrategyVision])
	assert.Equal(t, 0, rec.DimensionScores[DimExecutionImpact])
	_, hasDetail := rec.DimensionDetails[DimDataSystems]
	assert.False(t, hasDetail)
}

func TestParseReadiness_ScoresAreClamped(t *testing.T) {
	text := "Overall AI Readiness Score: 140\nPeople and Skills\nScore: 250/100\nStrong bench.\n"
	rec := ParseReadiness(text)

	assert.Equal(t, 100, rec.OverallScore)
	assert.Equal(t, 100, rec.DimensionScores[DimPeopleSkills])
	assert.Equal(t, "Strong bench.", rec.DimensionDetails[DimPeopleSkills])
}

func TestParseReadiness_CRLFAndBOM(t *testing.T) {
	text := "\ufeffOverall AI Readiness Score: 41\r\nMaturity Level: Emerging\r\n"
	rec := ParseReadiness(text)

	assert.Equal(t, 41, rec.OverallScore)
	assert.Equal(t, "Emerging", rec.MaturityLevel)
}

func TestParseReadiness_BlankMaturityLevelKeepsDefault(t *testing.T) {
	rec := ParseReadiness("Maturity Level:\nDescription: none yet\n")

	assert.Equal(t, "Exploring", rec.MaturityLevel)
	assert.Equal(t, "none yet", rec.MaturityDescription)
}

func TestParseReadiness_HighSectionStopsAtMedium(t *testing.T) {
	text := "HIGH PRIORITY\n1. A (Data & Systems)\nfirst\nMEDIUM PRIORITY\n1. B\nsecond\nLOW PRIORITY\n1. C\n"
	rec := ParseReadiness(text)

	require.Len(t, rec.Recommendations.High, 1)
	assert.Equal(t, "A", rec.Recommendations.High[0].Title)
	require.Len(t, rec.Recommendations.Medium, 1)
	assert.Equal(t, "B", rec.Recommendations.Medium[0].Title)
	assert.Equal(t, "", rec.Recommendations.Medium[0].Dimension)
	assert.Equal(t, "second", rec.Recommendations.Medium[0].Description)
}
