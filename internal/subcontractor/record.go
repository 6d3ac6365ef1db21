package subcontractor

import "strings"

// Record represents a single subcontractor.
// Trade, service areas and specialties are normalized to lowercase at
// load time; records are immutable once handed to the Store.
type Record struct {
	CompanyName     string   `json:"company_name"`
	TradeCategory   string   `json:"trade_category"`
	ServiceAreas    []string `json:"service_areas"`
	ContactEmail    string   `json:"contact_email"`
	Phone           string   `json:"phone"`
	Specialties     []string `json:"specialties"`
	Rating          float64  `json:"rating"`
	YearsExperience int      `json:"years_experience"`
	LicenseNumber   string   `json:"license_number"`
	BondingCapacity int64    `json:"bonding_capacity"`
	Notes           string   `json:"notes,omitempty"`
}

// ServesArea reports whether the record lists the given area.
// Matching is exact (case-insensitive), not geospatial.
func (r *Record) ServesArea(area string) bool {
	area = strings.ToLower(strings.TrimSpace(area))
	for _, a := range r.ServiceAreas {
		if a == area {
			return true
		}
	}
	return false
}

// HasSpecialty reports whether the record lists the given specialty
// or a specialty containing the given token.
func (r *Record) HasSpecialty(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return false
	}
	for _, s := range r.Specialties {
		if s == token || strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// normalizeList splits a comma-separated field into a trimmed,
// lowercased list, dropping empty entries.
func normalizeList(field string) []string {
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
