package subcontractor

// Stats represents aggregate statistics over the store
type Stats struct {
	Total          int            `json:"total"`
	TradesCovered  int            `json:"trades_covered"`
	TradeBreakdown map[string]int `json:"trade_breakdown"`
	AvgRating      float64        `json:"avg_rating"`
	AvgExperience  float64        `json:"avg_experience"`
	ServiceAreas   []string       `json:"service_areas"`
}

// Statistics aggregates descriptive statistics for the store.
// An empty store yields zero averages rather than an error.
func (s *Store) Statistics() Stats {
	stats := Stats{
		Total:          len(s.records),
		TradeBreakdown: make(map[string]int),
		ServiceAreas:   s.ServiceAreas(),
	}

	var ratingSum, expSum float64
	for _, r := range s.records {
		stats.TradeBreakdown[r.TradeCategory]++
		ratingSum += r.Rating
		expSum += float64(r.YearsExperience)
	}

	stats.TradesCovered = len(stats.TradeBreakdown)
	if stats.Total > 0 {
		stats.AvgRating = ratingSum / float64(stats.Total)
		stats.AvgExperience = expSum / float64(stats.Total)
	}

	return stats
}
