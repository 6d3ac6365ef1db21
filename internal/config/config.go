package config

// Config represents the application configuration
type Config struct {
	Data      DataConfig          `toml:"data"`
	Project   ProjectConfig       `toml:"project"`
	Scoring   ScoringConfig       `toml:"scoring"`
	TradeMap  map[string][]string `toml:"trade_map"`
	Specialty []SpecialtyGroup    `toml:"specialty_groups"`
	Analyze   AnalyzeConfig       `toml:"analyze"`
	Export    ExportConfig        `toml:"export"`
}

// DataConfig points at the subcontractor dataset
type DataConfig struct {
	Path string `toml:"path"`
}

// ProjectConfig contains per-project recommendation defaults
type ProjectConfig struct {
	DefaultLocation string  `toml:"default_location"`
	MinConfidence   float64 `toml:"min_confidence"`
	TopN            int     `toml:"top_n"`
}

// ScoringConfig contains the weighted scoring parameters.
// Weights are points on a 0-100 confidence scale.
type ScoringConfig struct {
	TradeWeight        float64 `toml:"trade_weight"`
	LocationWeight     float64 `toml:"location_weight"`
	RatingWeight       float64 `toml:"rating_weight"`
	ExperienceWeight   float64 `toml:"experience_weight"`
	BondingWeight      float64 `toml:"bonding_weight"`
	SpecialtyWeight    float64 `toml:"specialty_weight"`
	ExperienceCapYears int     `toml:"experience_cap_years"`
}

// SpecialtyGroup maps a project-type family to the keywords that identify it.
// Groups are matched in declaration order; the first match wins.
type SpecialtyGroup struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// AnalyzeConfig contains bid document analysis settings
type AnalyzeConfig struct {
	ScopeKeywords   []string         `toml:"scope_keywords"`
	BaseCosts       map[string]int64 `toml:"base_costs"`
	DefaultItemCost int64            `toml:"default_item_cost"`
	MaxLineItems    int              `toml:"max_line_items"`
	ContingencyRate float64          `toml:"contingency_rate"`
}

// ExportConfig contains text export settings
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path: "data/subcontractors.csv",
		},
		Project: ProjectConfig{
			DefaultLocation: "Phoenix",
			MinConfidence:   30.0,
			TopN:            3,
		},
		Scoring: ScoringConfig{
			TradeWeight:        40,
			LocationWeight:     20,
			RatingWeight:       15,
			ExperienceWeight:   10,
			BondingWeight:      10,
			SpecialtyWeight:    5,
			ExperienceCapYears: 20,
		},
		TradeMap: map[string][]string{
			"concrete":   {"concrete"},
			"steel":      {"steel"},
			"electrical": {"electrical"},
			"plumbing":   {"plumbing"},
			"hvac":       {"hvac"},
			"framing":    {"framing", "drywall"},
			"drywall":    {"drywall", "framing"},
			"roof":       {"roof"},
			"flooring":   {"flooring"},
			"sitework":   {"sitework"},
			"demolition": {"demolition"},
			"paint":      {"paint"},
		},
		Specialty: []SpecialtyGroup{
			{Name: "medical", Keywords: []string{"medical", "healthcare", "hospital", "clinic"}},
			{Name: "office", Keywords: []string{"office", "commercial", "corporate"}},
			{Name: "retail", Keywords: []string{"retail", "store", "shopping"}},
			{Name: "industrial", Keywords: []string{"industrial", "warehouse", "manufacturing"}},
			{Name: "institutional", Keywords: []string{"school", "university", "government", "institutional"}},
		},
		Analyze: AnalyzeConfig{
			ScopeKeywords: []string{
				"concrete", "steel", "electrical", "plumbing", "hvac", "framing",
				"drywall", "roof", "flooring", "sitework", "demolition", "paint",
			},
			BaseCosts: map[string]int64{
				"concrete":   220000,
				"steel":      180000,
				"electrical": 95000,
				"plumbing":   88000,
				"hvac":       120000,
				"framing":    65000,
				"drywall":    48000,
				"roof":       72000,
				"flooring":   56000,
				"sitework":   140000,
				"demolition": 52000,
				"paint":      18000,
			},
			DefaultItemCost: 50000,
			MaxLineItems:    8,
			ContingencyRate: 0.08,
		},
		Export: ExportConfig{
			Dir: "exports",
		},
	}
}
