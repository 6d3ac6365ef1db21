package cli

import (
	"github.com/spf13/cobra"

	"github.com/bidcraft/bidcraft/internal/output"
	"github.com/bidcraft/bidcraft/internal/subcontractor"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subcontractors",
	Long: `List loaded subcontractors with optional filters.

Examples:
  bidcraft list                    # List everything
  bidcraft list --trade=electrical # One trade only
  bidcraft list --area=phoenix     # One service area only
  bidcraft list -o json            # Output as JSON`,
	RunE: runList,
}

var (
	listTrade string
	listArea  string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listTrade, "trade", "", "Filter by trade category")
	listCmd.Flags().StringVar(&listArea, "area", "", "Filter by service area")
}

func runList(cmd *cobra.Command, args []string) error {
	_, store, _, err := loadEngine()
	if err != nil {
		return err
	}

	records := store.All()
	if listTrade != "" {
		records = store.ByTrade(listTrade)
	}
	if listArea != "" {
		records = filterByArea(records, listArea)
	}

	return output.Output(outputFmt, records)
}

func filterByArea(records []subcontractor.Record, area string) []subcontractor.Record {
	var out []subcontractor.Record
	for _, r := range records {
		if r.ServesArea(area) {
			out = append(out, r)
		}
	}
	return out
}
