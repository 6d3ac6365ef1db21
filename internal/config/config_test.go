package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing data path",
			mutate:  func(c *Config) { c.Data.Path = "" },
			wantErr: "data.path is required",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Scoring.RatingWeight = -5 },
			wantErr: "scoring.rating_weight must not be negative",
		},
		{
			name: "all weights zero",
			mutate: func(c *Config) {
				c.Scoring.TradeWeight = 0
				c.Scoring.LocationWeight = 0
				c.Scoring.RatingWeight = 0
				c.Scoring.ExperienceWeight = 0
				c.Scoring.BondingWeight = 0
				c.Scoring.SpecialtyWeight = 0
			},
			wantErr: "scoring weights must not all be zero",
		},
		{
			name:    "experience cap below one",
			mutate:  func(c *Config) { c.Scoring.ExperienceCapYears = 0 },
			wantErr: "experience_cap_years must be at least 1",
		},
		{
			name:    "empty trade map",
			mutate:  func(c *Config) { c.TradeMap = nil },
			wantErr: "trade_map must not be empty",
		},
		{
			name:    "keyword with no trades",
			mutate:  func(c *Config) { c.TradeMap["concrete"] = nil },
			wantErr: "trade_map.concrete must map to at least one trade",
		},
		{
			name:    "specialty group without keywords",
			mutate:  func(c *Config) { c.Specialty[0].Keywords = nil },
			wantErr: "has no keywords",
		},
		{
			name:    "contingency rate above one",
			mutate:  func(c *Config) { c.Analyze.ContingencyRate = 1.5 },
			wantErr: "analyze.contingency_rate must be between 0 and 1",
		},
		{
			name:    "missing export dir",
			mutate:  func(c *Config) { c.Export.Dir = "" },
			wantErr: "export.dir is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAcceptsExtremeProjectDefaults(t *testing.T) {
	cfg := Default()
	cfg.Project.MinConfidence = 500
	cfg.Project.TopN = -1

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for out-of-range project defaults", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[data]
path = "custom/subs.csv"

[project]
default_location = "Tempe"
min_confidence = 55.0
top_n = 5

[scoring]
trade_weight = 50.0
location_weight = 50.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Data.Path != "custom/subs.csv" {
		t.Errorf("Data.Path = %q, want custom/subs.csv", cfg.Data.Path)
	}
	if cfg.Project.DefaultLocation != "Tempe" {
		t.Errorf("DefaultLocation = %q, want Tempe", cfg.Project.DefaultLocation)
	}
	if cfg.Project.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.Project.TopN)
	}
	if cfg.Scoring.TradeWeight != 50 || cfg.Scoring.LocationWeight != 50 {
		t.Errorf("weights = %v/%v, want 50/50", cfg.Scoring.TradeWeight, cfg.Scoring.LocationWeight)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Analyze.ContingencyRate != 0.08 {
		t.Errorf("ContingencyRate = %v, want default 0.08", cfg.Analyze.ContingencyRate)
	}
	if len(cfg.TradeMap) == 0 {
		t.Error("TradeMap is empty, want defaults preserved")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Project.DefaultLocation != "Phoenix" {
		t.Errorf("DefaultLocation = %q, want Phoenix default", cfg.Project.DefaultLocation)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[data\npath ="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed TOML, want parse error")
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[scoring]
trade_weight = -10.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() = nil error, want validation failure")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error %q does not mention invalid config", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got, err := expandPath("~/bidcraft/config.toml")
	if err != nil {
		t.Fatalf("expandPath() error: %v", err)
	}
	want := filepath.Join(home, "bidcraft", "config.toml")
	if got != want {
		t.Errorf("expandPath() = %q, want %q", got, want)
	}

	got, err = expandPath("/etc/bidcraft.toml")
	if err != nil {
		t.Fatalf("expandPath() error: %v", err)
	}
	if got != "/etc/bidcraft.toml" {
		t.Errorf("expandPath() = %q, want unchanged absolute path", got)
	}
}
