package analyze

import "strings"

// CommodityRisk is a procurement risk note for a detected commodity
type CommodityRisk struct {
	Commodity      string `json:"commodity"`
	Risk           string `json:"risk"`
	Recommendation string `json:"recommendation"`
}

// commodityRules maps scope keywords to known procurement risks
var commodityRules = map[string]CommodityRisk{
	"steel": {
		Commodity:      "Steel",
		Risk:           "Price volatility / lead times",
		Recommendation: "Lock pricing with escalation clause or alternate suppliers.",
	},
	"concrete": {
		Commodity:      "Concrete",
		Risk:           "Regional supply constraints",
		Recommendation: "Confirm batch plant capacity; add schedule buffer.",
	},
}

// commodityOrder keeps risk output deterministic
var commodityOrder = []string{"steel", "concrete"}

// CommodityRisks returns procurement risk notes for the detected
// scope, with a generic fallback when no known commodity is present.
func CommodityRisks(detectedScope []string) []CommodityRisk {
	detected := make(map[string]bool, len(detectedScope))
	for _, s := range detectedScope {
		detected[strings.ToLower(s)] = true
	}

	var risks []CommodityRisk
	for _, kw := range commodityOrder {
		if detected[kw] {
			risks = append(risks, commodityRules[kw])
		}
	}

	if len(risks) == 0 {
		risks = append(risks, CommodityRisk{
			Commodity:      "General",
			Risk:           "Unknown scope",
			Recommendation: "Request clarifications + add contingency.",
		})
	}

	return risks
}
