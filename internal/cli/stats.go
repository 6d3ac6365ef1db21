package cli

import (
	"github.com/spf13/cobra"

	"github.com/bidcraft/bidcraft/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show subcontractor database statistics",
	Long: `Display aggregate statistics about the subcontractor database:
record counts, trade coverage, average rating and experience, and the
service areas covered.

Examples:
  bidcraft stats
  bidcraft stats -o json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	_, store, _, err := loadEngine()
	if err != nil {
		return err
	}

	return output.Output(outputFmt, store.Statistics())
}
