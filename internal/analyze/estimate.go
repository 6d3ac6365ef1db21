package analyze

import (
	"fmt"
	"math"

	"github.com/bidcraft/bidcraft/internal/config"
)

// LineItem is one category entry in a draft estimate
type LineItem struct {
	Category      string `json:"category"`
	Assumption    string `json:"assumption"`
	EstimatedCost int64  `json:"estimated_cost"`
}

// Estimate is a draft cost estimate built from detected scope
type Estimate struct {
	LineItems   []LineItem `json:"line_items"`
	Subtotal    int64      `json:"subtotal"`
	Contingency int64      `json:"contingency"`
	Total       int64      `json:"total"`
}

// BuildEstimate drafts an estimate from detected scope keywords using
// the configured base cost table. With no detected scope it falls back
// to a generic General Conditions placeholder.
func BuildEstimate(detectedScope []string, cfg config.AnalyzeConfig) Estimate {
	var items []LineItem

	scope := detectedScope
	if len(scope) > cfg.MaxLineItems {
		scope = scope[:cfg.MaxLineItems]
	}

	for _, kw := range scope {
		cost, ok := cfg.BaseCosts[kw]
		if !ok {
			cost = cfg.DefaultItemCost
		}
		items = append(items, LineItem{
			Category:      titleCase(kw),
			Assumption:    fmt.Sprintf("Included based on detected scope mention of %q.", kw),
			EstimatedCost: cost,
		})
	}

	if len(items) == 0 {
		items = []LineItem{{
			Category:      "General Conditions",
			Assumption:    "No obvious scope keywords found; defaulting to a generic estimate template.",
			EstimatedCost: 75000,
		}}
	}

	var subtotal int64
	for _, li := range items {
		subtotal += li.EstimatedCost
	}

	contingency := int64(math.Round(float64(subtotal) * cfg.ContingencyRate))

	return Estimate{
		LineItems:   items,
		Subtotal:    subtotal,
		Contingency: contingency,
		Total:       subtotal + contingency,
	}
}
