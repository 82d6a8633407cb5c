package reports

// Kind identifies which report format a text blob holds.
type Kind string

const (
	KindAuto      Kind = "auto"
	KindReadiness Kind = "readiness"
	KindToolbox   Kind = "toolbox"
)

// Record is the structured result of a parse. It is either a ReadinessRecord
// or a ToolboxRecord.
type Record interface {
	Kind() Kind
}

// Dimension keys, in display order.
const (
	DimStrategyVision   = "strategyVision"
	DimDataSystems      = "dataSystems"
	DimPeopleSkills     = "peopleSkills"
	DimGovernanceEthics = "governanceEthics"
	DimExecutionImpact  = "executionImpact"
)

// Dimension pairs a dimension key with its display name.
type Dimension struct {
	Key  string
	Name string
}

// Dimensions lists the five readiness dimensions in display order.
var Dimensions = []Dimension{
	{Key: DimStrategyVision, Name: "Strategy & Vision"},
	{Key: DimDataSystems, Name: "Data & Systems"},
	{Key: DimPeopleSkills, Name: "People & Skills"},
	{Key: DimGovernanceEthics, Name: "Governance & Ethics"},
	{Key: DimExecutionImpact, Name: "Execution & Impact"},
}

const defaultMaturityLevel = "Exploring"

// ReadinessRecord is the structured form of an AI readiness assessment.
type ReadinessRecord struct {
	OverallScore        int               `json:"overallScore" yaml:"overallScore"`
	MaturityLevel       string            `json:"maturityLevel" yaml:"maturityLevel"`
	MaturityDescription string            `json:"maturityDescription" yaml:"maturityDescription"`
	DimensionScores     map[string]int    `json:"dimensionScores" yaml:"dimensionScores"`
	DimensionDetails    map[string]string `json:"dimensionDetails" yaml:"dimensionDetails"`
	Recommendations     Recommendations   `json:"recommendations" yaml:"recommendations"`
}

// Kind implements Record.
func (ReadinessRecord) Kind() Kind { return KindReadiness }

// Recommendations groups recommendation items by priority.
type Recommendations struct {
	High   []RecommendationItem `json:"high" yaml:"high"`
	Medium []RecommendationItem `json:"medium" yaml:"medium"`
}

// RecommendationItem is one numbered recommendation of a priority section.
type RecommendationItem struct {
	Title       string   `json:"title" yaml:"title"`
	Dimension   string   `json:"dimension" yaml:"dimension"`
	Description string   `json:"description" yaml:"description"`
	ActionItems []string `json:"actionItems" yaml:"actionItems"`
}

// ToolboxRecord is the structured form of a toolbox recommendation report.
type ToolboxRecord struct {
	ReadinessScore         int         `json:"readinessScore" yaml:"readinessScore"`
	Industry               string      `json:"industry" yaml:"industry"`
	CompanySize            string      `json:"companySize" yaml:"companySize"`
	BudgetRange            string      `json:"budgetRange" yaml:"budgetRange"`
	ImplementationGuidance string      `json:"implementationGuidance" yaml:"implementationGuidance"`
	RecommendedTools       []ToolEntry `json:"recommendedTools" yaml:"recommendedTools"`
	NextSteps              []string    `json:"nextSteps" yaml:"nextSteps"`
}

// Kind implements Record.
func (ToolboxRecord) Kind() Kind { return KindToolbox }

// Priority tags used by toolbox reports.
const (
	PriorityEssential   = "ESSENTIAL"
	PriorityRecommended = "RECOMMENDED"
	PriorityOptional    = "OPTIONAL"
)

// ToolEntry is one numbered tool of the recommended tools section.
type ToolEntry struct {
	Name         string   `json:"name" yaml:"name"`
	Priority     string   `json:"priority" yaml:"priority"`
	MatchScore   int      `json:"matchScore" yaml:"matchScore"`
	Category     string   `json:"category" yaml:"category"`
	Website      string   `json:"website" yaml:"website"`
	WhyRecommend []string `json:"whyRecommend" yaml:"whyRecommend"`
	KeyFeatures  []string `json:"keyFeatures" yaml:"keyFeatures"`
	Pricing      []string `json:"pricing" yaml:"pricing"`
}

// NewReadinessRecord returns a record with every field at its default.
func NewReadinessRecord() ReadinessRecord {
	scores := make(map[string]int, len(Dimensions))
	for _, d := range Dimensions {
		scores[d.Key] = 0
	}
	return ReadinessRecord{
		MaturityLevel:    defaultMaturityLevel,
		DimensionScores:  scores,
		DimensionDetails: map[string]string{},
		Recommendations: Recommendations{
			High:   []RecommendationItem{},
			Medium: []RecommendationItem{},
		},
	}
}

// NewToolboxRecord returns a record with every field at its default.
func NewToolboxRecord() ToolboxRecord {
	return ToolboxRecord{
		RecommendedTools: []ToolEntry{},
		NextSteps:        []string{},
	}
}

func newToolEntry() ToolEntry {
	return ToolEntry{
		WhyRecommend: []string{},
		KeyFeatures:  []string{},
		Pricing:      []string{},
	}
}
