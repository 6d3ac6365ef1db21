package subcontractor

import "testing"

func TestStatistics(t *testing.T) {
	store := NewStore([]Record{
		{CompanyName: "A", TradeCategory: "concrete", Rating: 4.0, YearsExperience: 10, ServiceAreas: []string{"phoenix"}},
		{CompanyName: "B", TradeCategory: "concrete", Rating: 3.0, YearsExperience: 20, ServiceAreas: []string{"mesa", "phoenix"}},
		{CompanyName: "C", TradeCategory: "electrical", Rating: 5.0, YearsExperience: 6, ServiceAreas: []string{"tempe"}},
	})

	stats := store.Statistics()

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.TradesCovered != 2 {
		t.Errorf("TradesCovered = %d, want 2", stats.TradesCovered)
	}
	if stats.TradeBreakdown["concrete"] != 2 || stats.TradeBreakdown["electrical"] != 1 {
		t.Errorf("TradeBreakdown = %v, want concrete:2 electrical:1", stats.TradeBreakdown)
	}
	if stats.AvgRating != 4.0 {
		t.Errorf("AvgRating = %v, want 4.0", stats.AvgRating)
	}
	if stats.AvgExperience != 12.0 {
		t.Errorf("AvgExperience = %v, want 12.0", stats.AvgExperience)
	}
	if len(stats.ServiceAreas) != 3 {
		t.Errorf("ServiceAreas = %v, want 3 distinct areas", stats.ServiceAreas)
	}
}

func TestStatistics_EmptyStore(t *testing.T) {
	stats := NewStore(nil).Statistics()

	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if stats.TradesCovered != 0 {
		t.Errorf("TradesCovered = %d, want 0", stats.TradesCovered)
	}
	if stats.AvgRating != 0 {
		t.Errorf("AvgRating = %v, want 0", stats.AvgRating)
	}
	if stats.AvgExperience != 0 {
		t.Errorf("AvgExperience = %v, want 0", stats.AvgExperience)
	}
	if len(stats.ServiceAreas) != 0 {
		t.Errorf("ServiceAreas = %v, want empty", stats.ServiceAreas)
	}
}
