package subcontractor

import (
	"sort"
	"strings"
)

// Store holds the in-memory subcontractor collection.
// It is loaded once and read-only afterwards, so it can be shared
// across sessions without locking. Refreshing the dataset means
// building a new Store and swapping the reference.
type Store struct {
	records []Record
}

// NewStore creates a Store over the given records
func NewStore(records []Record) *Store {
	return &Store{records: records}
}

// OpenStore loads a Store from a CSV file
func OpenStore(path string) (*Store, error) {
	records, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return NewStore(records), nil
}

// Len returns the number of records in the store
func (s *Store) Len() int {
	return len(s.records)
}

// All returns every record in load order
func (s *Store) All() []Record {
	return s.records
}

// ByTrade returns records whose trade category exactly matches the
// given trade. Crossover trades are resolved by the trade map before
// candidates are selected, never here.
func (s *Store) ByTrade(trade string) []Record {
	trade = strings.ToLower(strings.TrimSpace(trade))
	var out []Record
	for _, r := range s.records {
		if r.TradeCategory == trade {
			out = append(out, r)
		}
	}
	return out
}

// ByArea returns records that list the given service area
func (s *Store) ByArea(area string) []Record {
	var out []Record
	for _, r := range s.records {
		if r.ServesArea(area) {
			out = append(out, r)
		}
	}
	return out
}

// ServiceAreas returns the sorted, deduplicated union of all service
// areas across the store.
func (s *Store) ServiceAreas() []string {
	seen := make(map[string]struct{})
	for _, r := range s.records {
		for _, a := range r.ServiceAreas {
			seen[a] = struct{}{}
		}
	}

	areas := make([]string, 0, len(seen))
	for a := range seen {
		areas = append(areas, a)
	}
	sort.Strings(areas)
	return areas
}
