package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "bidcraft")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'bidcraft config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Point data.path at your subcontractor CSV")
	fmt.Println("  2. Run 'bidcraft stats' to verify the dataset loads")
	fmt.Println("  3. Run 'bidcraft recommend --scope=concrete' to try it out")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'bidcraft config init' to create one.")
			fmt.Println("Built-in defaults are in effect.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# BidCraft Configuration

[data]
path = "data/subcontractors.csv"

[project]
default_location = "Phoenix"
min_confidence = 30.0    # Drop recommendations scoring below this (0-100)
top_n = 3                # Recommendations per trade

[scoring]
# Weights are points on the 0-100 confidence scale
trade_weight = 40.0
location_weight = 20.0
rating_weight = 15.0
experience_weight = 10.0
bonding_weight = 10.0
specialty_weight = 5.0
experience_cap_years = 20

# Scope keyword -> trade categories it satisfies.
# Crossover trades (framing/drywall) are listed in both directions.
[trade_map]
concrete = ["concrete"]
steel = ["steel"]
electrical = ["electrical"]
plumbing = ["plumbing"]
hvac = ["hvac"]
framing = ["framing", "drywall"]
drywall = ["drywall", "framing"]
roof = ["roof"]
flooring = ["flooring"]
sitework = ["sitework"]
demolition = ["demolition"]
paint = ["paint"]

# Project-type families for specialty matching, checked in order
[[specialty_groups]]
name = "medical"
keywords = ["medical", "healthcare", "hospital", "clinic"]

[[specialty_groups]]
name = "office"
keywords = ["office", "commercial", "corporate"]

[[specialty_groups]]
name = "retail"
keywords = ["retail", "store", "shopping"]

[[specialty_groups]]
name = "industrial"
keywords = ["industrial", "warehouse", "manufacturing"]

[[specialty_groups]]
name = "institutional"
keywords = ["school", "university", "government", "institutional"]

[analyze]
scope_keywords = [
    "concrete", "steel", "electrical", "plumbing", "hvac", "framing",
    "drywall", "roof", "flooring", "sitework", "demolition", "paint",
]
default_item_cost = 50000
max_line_items = 8
contingency_rate = 0.08

[analyze.base_costs]
concrete = 220000
steel = 180000
electrical = 95000
plumbing = 88000
hvac = 120000
framing = 65000
drywall = 48000
roof = 72000
flooring = 56000
sitework = 140000
demolition = 52000
paint = 18000

[export]
dir = "exports"
`
