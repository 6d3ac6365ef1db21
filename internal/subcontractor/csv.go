package subcontractor

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required CSV columns. Extra columns are ignored so the dataset can
// grow without breaking older builds.
var requiredColumns = []string{
	"company_name", "trade_category", "service_areas", "contact_email",
	"phone", "specialties", "rating", "years_experience",
	"license_number", "bonding_capacity", "notes",
}

// LoadCSV reads subcontractor records from a CSV file.
// The first row is treated as headers. Malformed rows are rejected
// here so they never reach the recommendation engine.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", path, err)
	}
	return records, nil
}

// ReadCSV parses subcontractor records from CSV data
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file (no header row)")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, columns map[string]int) (Record, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	name := field("company_name")
	if name == "" {
		return Record{}, fmt.Errorf("company_name is required")
	}

	trade := strings.ToLower(field("trade_category"))
	if trade == "" {
		return Record{}, fmt.Errorf("trade_category is required")
	}

	rating, err := strconv.ParseFloat(field("rating"), 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid rating %q: %w", field("rating"), err)
	}
	if rating < 0 || rating > 5 {
		return Record{}, fmt.Errorf("rating %v is outside [0, 5]", rating)
	}

	years, err := strconv.Atoi(field("years_experience"))
	if err != nil {
		return Record{}, fmt.Errorf("invalid years_experience %q: %w", field("years_experience"), err)
	}
	if years < 0 {
		return Record{}, fmt.Errorf("years_experience must not be negative, got %d", years)
	}

	bonding, err := strconv.ParseInt(field("bonding_capacity"), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid bonding_capacity %q: %w", field("bonding_capacity"), err)
	}
	if bonding < 0 {
		return Record{}, fmt.Errorf("bonding_capacity must not be negative, got %d", bonding)
	}

	return Record{
		CompanyName:     name,
		TradeCategory:   trade,
		ServiceAreas:    normalizeList(field("service_areas")),
		ContactEmail:    field("contact_email"),
		Phone:           field("phone"),
		Specialties:     normalizeList(field("specialties")),
		Rating:          rating,
		YearsExperience: years,
		LicenseNumber:   field("license_number"),
		BondingCapacity: bonding,
		Notes:           field("notes"),
	}, nil
}
