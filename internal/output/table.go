package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bidcraft/bidcraft/internal/analyze"
	"github.com/bidcraft/bidcraft/internal/recommend"
	"github.com/bidcraft/bidcraft/internal/subcontractor"
)

var titleCaser = cases.Title(language.English)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []subcontractor.Record:
		return recordsTable(w, v)
	case subcontractor.Stats:
		return statsTable(w, v)
	case recommend.Result:
		return recommendationsTable(w, v)
	case analyze.Summary:
		return summaryTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recordsTable(w io.Writer, records []subcontractor.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No subcontractors found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPANY\tTRADE\tRATING\tYEARS\tBONDING\tSERVICE AREAS")
	fmt.Fprintln(tw, "-------\t-----\t------\t-----\t-------\t-------------")

	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%d\t$%d\t%s\n",
			truncate(r.CompanyName, 28),
			r.TradeCategory,
			r.Rating,
			r.YearsExperience,
			r.BondingCapacity,
			truncate(strings.Join(r.ServiceAreas, ", "), 36),
		)
	}

	return tw.Flush()
}

func statsTable(w io.Writer, s subcontractor.Stats) error {
	fmt.Fprintln(w, "Subcontractor Database Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 34))
	fmt.Fprintf(w, "Total subcontractors:   %d\n", s.Total)
	fmt.Fprintf(w, "Trades covered:         %d\n", s.TradesCovered)
	fmt.Fprintf(w, "Average rating:         %.1f/5.0\n", s.AvgRating)
	fmt.Fprintf(w, "Average experience:     %.0f yrs\n", s.AvgExperience)
	fmt.Fprintln(w)

	if len(s.TradeBreakdown) > 0 {
		fmt.Fprintln(w, "Trade breakdown:")
		trades := make([]string, 0, len(s.TradeBreakdown))
		for t := range s.TradeBreakdown {
			trades = append(trades, t)
		}
		sort.Strings(trades)
		for _, t := range trades {
			fmt.Fprintf(w, "  %-14s %d\n", titleCaser.String(t), s.TradeBreakdown[t])
		}
		fmt.Fprintln(w)
	}

	if len(s.ServiceAreas) > 0 {
		fmt.Fprintf(w, "Service areas: %s\n", strings.Join(s.ServiceAreas, ", "))
	}

	return nil
}

func recommendationsTable(w io.Writer, result recommend.Result) error {
	if len(result.Trades) == 0 {
		fmt.Fprintln(w, "No trades resolved from the detected scope.")
		return nil
	}

	for _, trade := range result.Trades {
		fmt.Fprintf(w, "%s\n", titleCaser.String(trade))
		fmt.Fprintln(w, strings.Repeat("-", 40))

		recs := result.ByTrade[trade]
		if len(recs) == 0 {
			fmt.Fprintln(w, "  No qualifying subcontractors.")
			fmt.Fprintln(w)
			continue
		}

		for i, rec := range recs {
			c := rec.Candidate
			fmt.Fprintf(w, "  %d. %s (confidence: %.1f%%)\n", i+1, c.CompanyName, rec.Confidence)
			fmt.Fprintf(w, "     %s | %s | license %s\n", c.Phone, c.ContactEmail, c.LicenseNumber)
			fmt.Fprintf(w, "     rating %.1f/5.0 | %d yrs | bonding $%d\n", c.Rating, c.YearsExperience, c.BondingCapacity)

			for _, reason := range rec.Reasons {
				marker := "+"
				if reason.Kind == recommend.ReasonCaution {
					marker = "!"
				}
				fmt.Fprintf(w, "     %s %s\n", marker, reason.Detail)
			}

			if c.Notes != "" {
				fmt.Fprintf(w, "     note: %s\n", c.Notes)
			}
			fmt.Fprintln(w)
		}
	}

	return nil
}

func summaryTable(w io.Writer, s analyze.Summary) error {
	fmt.Fprintf(w, "Project:  %s\n", s.ProjectName)
	fmt.Fprintf(w, "Location: %s\n", s.Location)
	if s.ProjectType != "" {
		fmt.Fprintf(w, "Type:     %s\n", s.ProjectType)
	}
	fmt.Fprintf(w, "Source:   %s\n", s.SourceFile)
	fmt.Fprintln(w)

	if len(s.DetectedScope) > 0 {
		fmt.Fprintf(w, "Detected scope: %s\n", strings.Join(s.DetectedScope, ", "))
	} else {
		fmt.Fprintln(w, "Detected scope: none")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Estimate draft:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, li := range s.Estimate.LineItems {
		fmt.Fprintf(tw, "  %s\t$%d\t%s\n", li.Category, li.EstimatedCost, li.Assumption)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Subtotal:    $%d\n", s.Estimate.Subtotal)
	fmt.Fprintf(w, "  Contingency: $%d\n", s.Estimate.Contingency)
	fmt.Fprintf(w, "  Total:       $%d\n", s.Estimate.Total)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Commodity risks:")
	for _, r := range s.CommodityRisks {
		fmt.Fprintf(w, "  %s: %s -> %s\n", r.Commodity, r.Risk, r.Recommendation)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
