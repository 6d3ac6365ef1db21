package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bidcraft/bidcraft/internal/analyze"
	"github.com/bidcraft/bidcraft/internal/output"
	"github.com/bidcraft/bidcraft/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend subcontractors for detected scope",
	Long: `Recommend subcontractors per trade for the given project scope.

Scope keywords come from --scope or are detected from a bid document
with --scope-file. Unrecognized keywords are ignored.

Examples:
  bidcraft recommend --scope=concrete,electrical --location=Phoenix
  bidcraft recommend --scope-file=bid.txt --bid-value=500000
  bidcraft recommend --scope=framing --project-type="Medical Office" -o json`,
	RunE: runRecommend,
}

var (
	recScope         string
	recScopeFile     string
	recLocation      string
	recProjectType   string
	recBidValue      int64
	recMinConfidence float64
	recTopN          int
	recProjectName   string
	recExport        bool
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recScope, "scope", "", "Comma-separated scope keywords (e.g. concrete,electrical)")
	recommendCmd.Flags().StringVar(&recScopeFile, "scope-file", "", "Detect scope from a bid document text file")
	recommendCmd.Flags().StringVar(&recLocation, "location", "", "Project location (default from config)")
	recommendCmd.Flags().StringVar(&recProjectType, "project-type", "", "Project type (e.g. 'Medical Office')")
	recommendCmd.Flags().Int64Var(&recBidValue, "bid-value", 0, "Total bid value for bonding checks")
	recommendCmd.Flags().Float64Var(&recMinConfidence, "min-confidence", 0, "Minimum confidence score (default from config)")
	recommendCmd.Flags().IntVar(&recTopN, "top-n", 0, "Recommendations per trade (default from config)")
	recommendCmd.Flags().StringVar(&recProjectName, "project-name", "", "Project name for exports")
	recommendCmd.Flags().BoolVar(&recExport, "export", false, "Write recommendations to the export directory")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, _, engine, err := loadEngine()
	if err != nil {
		return err
	}

	scope, err := resolveScope(cfg.Analyze.ScopeKeywords)
	if err != nil {
		return err
	}
	if len(scope) == 0 {
		return fmt.Errorf("no scope keywords given (use --scope or --scope-file)")
	}

	req := recommend.Request{
		Scope:         scope,
		Location:      cfg.Project.DefaultLocation,
		ProjectType:   recProjectType,
		MinConfidence: cfg.Project.MinConfidence,
		TopN:          cfg.Project.TopN,
	}
	if recLocation != "" {
		req.Location = recLocation
	}
	if cmd.Flags().Changed("bid-value") {
		bid := recBidValue
		req.BidValue = &bid
	}
	if cmd.Flags().Changed("min-confidence") {
		req.MinConfidence = recMinConfidence
	}
	if cmd.Flags().Changed("top-n") {
		req.TopN = recTopN
	}

	log.Debug("recommending subcontractors",
		zap.Strings("scope", req.Scope),
		zap.String("location", req.Location),
		zap.Float64("min_confidence", req.MinConfidence),
		zap.Int("top_n", req.TopN),
	)

	result := engine.Recommend(req)

	if recExport {
		path, err := output.ExportRecommendations(cfg.Export.Dir, recProjectName, req.Location, result)
		if err != nil {
			return err
		}
		log.Info("wrote recommendations export", zap.String("path", path))
	}

	return output.Output(outputFmt, result)
}

// resolveScope builds the scope keyword list from flags: an explicit
// comma list, a bid document to scan, or both combined.
func resolveScope(keywords []string) ([]string, error) {
	var scope []string

	if recScope != "" {
		for _, kw := range strings.Split(recScope, ",") {
			kw = strings.TrimSpace(kw)
			if kw != "" {
				scope = append(scope, kw)
			}
		}
	}

	if recScopeFile != "" {
		text, err := os.ReadFile(recScopeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read scope file: %w", err)
		}
		scope = append(scope, analyze.DetectScope(string(text), keywords)...)
	}

	return scope, nil
}
