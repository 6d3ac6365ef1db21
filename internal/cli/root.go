package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bidcraft/bidcraft/internal/config"
	"github.com/bidcraft/bidcraft/internal/logger"
	"github.com/bidcraft/bidcraft/internal/recommend"
	"github.com/bidcraft/bidcraft/internal/subcontractor"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
	verbose    bool

	log *zap.Logger
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bidcraft",
	Short: "Subcontractor recommendations for construction bids",
	Long: `bidcraft analyzes bid documents and recommends subcontractors
for the detected project scope.

It provides:
  - Scope keyword detection with a draft cost estimate
  - Weighted confidence scoring of subcontractor candidates
  - Per-trade ranked recommendations with match explanations
  - Database statistics and text exports`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/bidcraft/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "bidcraft", "config.toml")
	}
}

// loadEngine loads configuration, the subcontractor store and the
// recommendation engine shared by most commands.
func loadEngine() (*config.Config, *subcontractor.Store, *recommend.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := subcontractor.OpenStore(cfg.Data.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load subcontractor data: %w", err)
	}
	log.Debug("loaded subcontractor store",
		zap.String("path", cfg.Data.Path),
		zap.Int("records", store.Len()),
	)

	engine, err := recommend.NewEngine(cfg, store)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, store, engine, nil
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bidcraft %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
