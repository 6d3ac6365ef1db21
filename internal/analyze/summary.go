package analyze

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bidcraft/bidcraft/internal/config"
)

var titleCaser = cases.Title(language.English)

// titleCase renders a lowercase scope keyword for display
func titleCase(s string) string {
	return titleCaser.String(s)
}

// Summary is the full analysis of one bid document
type Summary struct {
	ProjectName    string          `json:"project_name"`
	CreatedAt      time.Time       `json:"created_at"`
	SourceFile     string          `json:"source_file"`
	Notes          string          `json:"notes,omitempty"`
	Location       string          `json:"location"`
	ProjectType    string          `json:"project_type,omitempty"`
	DetectedScope  []string        `json:"detected_scope"`
	Estimate       Estimate        `json:"estimate"`
	CommodityRisks []CommodityRisk `json:"commodity_risks"`
}

// Analyze runs scope detection, estimating and risk assessment over
// extracted bid document text.
func Analyze(text string, cfg config.AnalyzeConfig) ([]string, Estimate, []CommodityRisk) {
	scope := DetectScope(text, cfg.ScopeKeywords)
	return scope, BuildEstimate(scope, cfg), CommodityRisks(scope)
}

// NewSummary assembles a bid summary from document text and project
// metadata.
func NewSummary(projectName, sourceFile, notes, location, projectType, text string, cfg config.AnalyzeConfig) Summary {
	if projectName == "" {
		projectName = "Untitled Project"
	}

	scope, estimate, risks := Analyze(text, cfg)

	return Summary{
		ProjectName:    projectName,
		CreatedAt:      time.Now().UTC(),
		SourceFile:     sourceFile,
		Notes:          notes,
		Location:       location,
		ProjectType:    projectType,
		DetectedScope:  scope,
		Estimate:       estimate,
		CommodityRisks: risks,
	}
}
