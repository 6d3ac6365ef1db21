package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bidcraft/bidcraft/internal/analyze"
	"github.com/bidcraft/bidcraft/internal/config"
	"github.com/bidcraft/bidcraft/internal/recommend"
	"github.com/bidcraft/bidcraft/internal/subcontractor"
)

func sampleRecord() subcontractor.Record {
	return subcontractor.Record{
		CompanyName:     "Desert Ridge Concrete",
		TradeCategory:   "concrete",
		ServiceAreas:    []string{"phoenix", "tempe"},
		ContactEmail:    "bids@desertridge.example.com",
		Phone:           "602-555-0101",
		Specialties:     []string{"foundations"},
		Rating:          4.6,
		YearsExperience: 18,
		LicenseNumber:   "ROC-312001",
		BondingCapacity: 2000000,
	}
}

func sampleResult() recommend.Result {
	return recommend.Result{
		Trades: []string{"concrete", "steel"},
		ByTrade: map[string][]recommend.Recommendation{
			"concrete": {
				{
					Candidate:  sampleRecord(),
					Confidence: 87.5,
					Reasons: []recommend.Reason{
						{Kind: recommend.ReasonPositive, Code: "trade_match", Detail: "Exact trade match"},
						{Kind: recommend.ReasonCaution, Code: "location_miss", Detail: "No listed presence in Mesa"},
					},
				},
			},
			"steel": {},
		},
	}
}

func TestTableTo_Records(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, []subcontractor.Record{sampleRecord()}); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"COMPANY", "Desert Ridge Concrete", "4.6", "phoenix, tempe"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableTo_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, []subcontractor.Record{}); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No subcontractors found.") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestTableTo_Stats(t *testing.T) {
	stats := subcontractor.Stats{
		Total:          3,
		TradesCovered:  2,
		TradeBreakdown: map[string]int{"concrete": 2, "electrical": 1},
		AvgRating:      4.3,
		AvgExperience:  12.0,
		ServiceAreas:   []string{"phoenix", "tempe"},
	}

	var buf bytes.Buffer
	if err := TableTo(&buf, stats); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Total subcontractors:   3", "4.3/5.0", "Concrete", "phoenix, tempe"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestTableTo_Recommendations(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, sampleResult()); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Concrete",
		"1. Desert Ridge Concrete (confidence: 87.5%)",
		"+ Exact trade match",
		"! No listed presence in Mesa",
		"No qualifying subcontractors.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("recommendations output missing %q:\n%s", want, out)
		}
	}
}

func TestTableTo_Summary(t *testing.T) {
	cfg := config.Default().Analyze
	s := analyze.NewSummary("Mesa Clinic", "bid.txt", "", "Mesa", "Medical Office",
		"Pour concrete foundations and erect structural steel.", cfg)

	var buf bytes.Buffer
	if err := TableTo(&buf, s); err != nil {
		t.Fatalf("TableTo() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Project:  Mesa Clinic", "Detected scope: concrete, steel", "Estimate draft:", "Commodity risks:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestTableTo_UnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	if err := TableTo(&buf, 42); err == nil {
		t.Error("TableTo(int) = nil error, want unsupported type error")
	}
}

func TestJSONTo_EmptyTradeEncodesAsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONTo(&buf, sampleResult()); err != nil {
		t.Fatalf("JSONTo() error: %v", err)
	}

	var decoded struct {
		ByTrade map[string]json.RawMessage `json:"by_trade"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}

	raw, ok := decoded.ByTrade["steel"]
	if !ok {
		t.Fatal("steel missing from by_trade, want empty array entry")
	}
	if strings.TrimSpace(string(raw)) == "null" {
		t.Error("by_trade.steel encoded as null, want []")
	}
}

func TestExportBidSummary(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().Analyze
	s := analyze.NewSummary("Mesa Clinic", "bid.txt", "Fast-track schedule.", "Mesa", "Medical Office",
		"Pour concrete foundations.", cfg)

	path, err := ExportBidSummary(dir, s)
	if err != nil {
		t.Fatalf("ExportBidSummary() error: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "bid_summary_") || !strings.HasSuffix(base, ".txt") {
		t.Errorf("export filename = %q, want bid_summary_<id>.txt", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Project: Mesa Clinic", "Notes:\nFast-track schedule.", "Detected Scope:", "concrete", "TOTAL: $"} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q:\n%s", want, out)
		}
	}
}

func TestExportRecommendations(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportRecommendations(dir, "Mesa Clinic", "Mesa", sampleResult())
	if err != nil {
		t.Fatalf("ExportRecommendations() error: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "subcontractor_recommendations_") || !strings.HasSuffix(base, ".txt") {
		t.Errorf("export filename = %q, want subcontractor_recommendations_<stamp>.txt", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"Project: Mesa Clinic",
		"CONCRETE",
		"1. Desert Ridge Concrete (Confidence: 87.5%)",
		"License: ROC-312001",
		"! No listed presence in Mesa",
		"No recommendations found.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q:\n%s", want, out)
		}
	}
}

func TestOutputUnknownFormat(t *testing.T) {
	if err := Output("yaml", sampleResult()); err == nil {
		t.Error("Output(yaml) = nil error, want unknown format error")
	}
}
