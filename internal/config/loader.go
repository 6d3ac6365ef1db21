package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file.
// A missing file is not an error: defaults are returned so the tool
// works out of the box with the bundled dataset.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Data.Path, err = expandPath(cfg.Data.Path); err != nil {
		return nil, fmt.Errorf("failed to expand data path: %w", err)
	}
	if cfg.Export.Dir, err = expandPath(cfg.Export.Dir); err != nil {
		return nil, fmt.Errorf("failed to expand export dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or exits with error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// Validate checks that the configuration is valid.
// Note: project.min_confidence and project.top_n are deliberately not
// range-checked; out-of-range values are accepted as-is and handled by
// the recommendation engine (extreme values simply filter everything or
// nothing).
func (c *Config) Validate() error {
	var errs []error

	if c.Data.Path == "" {
		errs = append(errs, errors.New("data.path is required"))
	}

	weights := map[string]float64{
		"scoring.trade_weight":      c.Scoring.TradeWeight,
		"scoring.location_weight":   c.Scoring.LocationWeight,
		"scoring.rating_weight":     c.Scoring.RatingWeight,
		"scoring.experience_weight": c.Scoring.ExperienceWeight,
		"scoring.bonding_weight":    c.Scoring.BondingWeight,
		"scoring.specialty_weight":  c.Scoring.SpecialtyWeight,
	}
	total := 0.0
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, w))
		}
		total += w
	}
	if total <= 0 {
		errs = append(errs, errors.New("scoring weights must not all be zero"))
	}

	if c.Scoring.ExperienceCapYears < 1 {
		errs = append(errs, errors.New("scoring.experience_cap_years must be at least 1"))
	}

	if len(c.TradeMap) == 0 {
		errs = append(errs, errors.New("trade_map must not be empty"))
	}
	for keyword, trades := range c.TradeMap {
		if len(trades) == 0 {
			errs = append(errs, fmt.Errorf("trade_map.%s must map to at least one trade", keyword))
		}
	}

	for i, group := range c.Specialty {
		if group.Name == "" {
			errs = append(errs, fmt.Errorf("specialty_groups[%d] is missing a name", i))
		}
		if len(group.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("specialty_groups[%d] (%s) has no keywords", i, group.Name))
		}
	}

	if c.Analyze.ContingencyRate < 0 || c.Analyze.ContingencyRate > 1 {
		errs = append(errs, fmt.Errorf("analyze.contingency_rate must be between 0 and 1, got %v", c.Analyze.ContingencyRate))
	}
	if c.Analyze.MaxLineItems < 1 {
		errs = append(errs, errors.New("analyze.max_line_items must be at least 1"))
	}

	if c.Export.Dir == "" {
		errs = append(errs, errors.New("export.dir is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
