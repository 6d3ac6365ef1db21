package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bidcraft/bidcraft/internal/analyze"
	"github.com/bidcraft/bidcraft/internal/recommend"
)

// ExportBidSummary writes a bid summary as a plain-text file in dir
// and returns the written path.
func ExportBidSummary(dir string, s analyze.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	fileID := uuid.New().String()[:8]
	path := filepath.Join(dir, fmt.Sprintf("bid_summary_%s.txt", fileID))

	var b strings.Builder
	fmt.Fprintf(&b, "BidCraft - Export-Ready Bid Summary\n")
	fmt.Fprintf(&b, "Project: %s\n", s.ProjectName)
	fmt.Fprintf(&b, "Location: %s\n", s.Location)
	fmt.Fprintf(&b, "Type: %s\n", s.ProjectType)
	fmt.Fprintf(&b, "Created: %s\n", s.CreatedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "Source: %s\n\n", s.SourceFile)

	if s.Notes != "" {
		fmt.Fprintf(&b, "Notes:\n%s\n\n", s.Notes)
	}

	fmt.Fprintf(&b, "Detected Scope:\n")
	if len(s.DetectedScope) > 0 {
		fmt.Fprintf(&b, "%s\n\n", strings.Join(s.DetectedScope, ", "))
	} else {
		fmt.Fprintf(&b, "None detected\n\n")
	}

	fmt.Fprintf(&b, "Estimate Draft:\n")
	for _, li := range s.Estimate.LineItems {
		fmt.Fprintf(&b, "- %s: $%d (%s)\n", li.Category, li.EstimatedCost, li.Assumption)
	}
	fmt.Fprintf(&b, "\nSubtotal: $%d\n", s.Estimate.Subtotal)
	fmt.Fprintf(&b, "Contingency: $%d\n", s.Estimate.Contingency)
	fmt.Fprintf(&b, "TOTAL: $%d\n\n", s.Estimate.Total)

	fmt.Fprintf(&b, "Commodity Risks & Recommendations:\n")
	for _, r := range s.CommodityRisks {
		fmt.Fprintf(&b, "- %s: %s -> %s\n", r.Commodity, r.Risk, r.Recommendation)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write bid summary: %w", err)
	}
	return path, nil
}

// ExportRecommendations writes a recommendation run as a plain-text
// file in dir and returns the written path.
func ExportRecommendations(dir, projectName, location string, result recommend.Result) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	now := time.Now().UTC()
	path := filepath.Join(dir, fmt.Sprintf("subcontractor_recommendations_%s.txt", now.Format("20060102_1504")))

	var b strings.Builder
	fmt.Fprintf(&b, "BidCraft - Subcontractor Recommendations\n")
	if projectName != "" {
		fmt.Fprintf(&b, "Project: %s\n", projectName)
	}
	fmt.Fprintf(&b, "Location: %s\n", location)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 80))

	for _, trade := range result.Trades {
		fmt.Fprintf(&b, "\n%s\n", strings.ToUpper(trade))
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 40))

		recs := result.ByTrade[trade]
		if len(recs) == 0 {
			fmt.Fprintf(&b, "No recommendations found.\n")
			continue
		}

		for i, rec := range recs {
			c := rec.Candidate
			fmt.Fprintf(&b, "\n%d. %s (Confidence: %.1f%%)\n", i+1, c.CompanyName, rec.Confidence)
			fmt.Fprintf(&b, "   Phone: %s\n", c.Phone)
			fmt.Fprintf(&b, "   Email: %s\n", c.ContactEmail)
			fmt.Fprintf(&b, "   License: %s\n", c.LicenseNumber)
			fmt.Fprintf(&b, "   Rating: %.1f/5.0 | Experience: %d years\n", c.Rating, c.YearsExperience)
			fmt.Fprintf(&b, "   Specialties: %s\n", strings.Join(c.Specialties, ", "))
			fmt.Fprintf(&b, "   Service Areas: %s\n", strings.Join(c.ServiceAreas, ", "))
			fmt.Fprintf(&b, "   Bonding Capacity: $%d\n", c.BondingCapacity)

			for _, reason := range rec.Reasons {
				marker := "+"
				if reason.Kind == recommend.ReasonCaution {
					marker = "!"
				}
				fmt.Fprintf(&b, "   %s %s\n", marker, reason.Detail)
			}

			if c.Notes != "" {
				fmt.Fprintf(&b, "   Notes: %s\n", c.Notes)
			}
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write recommendations: %w", err)
	}
	return path, nil
}
