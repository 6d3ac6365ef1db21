package recommend

import "strings"

// TradeMap maps a scope keyword to the canonical trade categories it
// satisfies. Crossover trades (framing/drywall) are expressed here
// as data, not in scoring logic, so new trades can be added without
// touching the algorithm.
type TradeMap map[string][]string

// NewTradeMap builds a TradeMap from configuration, normalizing keys
// and trade names to lowercase.
func NewTradeMap(raw map[string][]string) TradeMap {
	m := make(TradeMap, len(raw))
	for keyword, trades := range raw {
		normalized := make([]string, 0, len(trades))
		for _, t := range trades {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				normalized = append(normalized, t)
			}
		}
		m[strings.ToLower(strings.TrimSpace(keyword))] = normalized
	}
	return m
}

// Resolve maps a raw scope keyword to its canonical trade set.
// Unknown keywords resolve to an empty set, not an error.
func (m TradeMap) Resolve(scopeKeyword string) []string {
	trades, ok := m[strings.ToLower(strings.TrimSpace(scopeKeyword))]
	if !ok {
		return nil
	}
	out := make([]string, len(trades))
	copy(out, trades)
	return out
}

// ResolveAll resolves every keyword and unions the results,
// deduplicated and in first-seen order. Keywords that resolve to
// nothing contribute nothing.
func (m TradeMap) ResolveAll(scopeKeywords []string) []string {
	seen := make(map[string]struct{})
	var trades []string
	for _, kw := range scopeKeywords {
		for _, t := range m.Resolve(kw) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			trades = append(trades, t)
		}
	}
	return trades
}
