package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bidcraft/bidcraft/internal/analyze"
	"github.com/bidcraft/bidcraft/internal/config"
	"github.com/bidcraft/bidcraft/internal/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.txt>",
	Short: "Analyze a bid document",
	Long: `Analyze a bid document: detect scope keywords, draft a cost
estimate and flag commodity risks.

Plain text input is expected; PDF/DOCX parsing is out of scope.

Examples:
  bidcraft analyze bid.txt --project-name="Phoenix Medical Office"
  bidcraft analyze bid.txt --location=Tempe --export
  bidcraft analyze bid.txt -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	anProjectName string
	anProjectType string
	anLocation    string
	anNotes       string
	anExport      bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&anProjectName, "project-name", "", "Project name")
	analyzeCmd.Flags().StringVar(&anProjectType, "project-type", "", "Project type (e.g. 'Medical Office')")
	analyzeCmd.Flags().StringVar(&anLocation, "location", "", "Project location (default from config)")
	analyzeCmd.Flags().StringVar(&anNotes, "notes", "", "Estimator notes / assumptions")
	analyzeCmd.Flags().BoolVar(&anExport, "export", false, "Write the bid summary to the export directory")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read bid document: %w", err)
	}

	location := anLocation
	if location == "" {
		location = cfg.Project.DefaultLocation
	}

	summary := analyze.NewSummary(anProjectName, filepath.Base(path), anNotes, location, anProjectType, string(text), cfg.Analyze)
	log.Debug("analyzed bid document",
		zap.String("file", path),
		zap.Strings("detected_scope", summary.DetectedScope),
		zap.Int64("estimate_total", summary.Estimate.Total),
	)

	if anExport {
		exportPath, err := output.ExportBidSummary(cfg.Export.Dir, summary)
		if err != nil {
			return err
		}
		log.Info("wrote bid summary export", zap.String("path", exportPath))
	}

	return output.Output(outputFmt, summary)
}
