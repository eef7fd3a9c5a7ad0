package models

import "strings"

// CityFilter stores the list filter settings
type CityFilter struct {
	MinIndex *float64 `json:"min_index"`
	MaxIndex *float64 `json:"max_index"`
	States   []string `json:"states"`
}

// IsCityAllowed checks if a city matches the filter criteria
func (f *CityFilter) IsCityAllowed(city *CityRecord) bool {
	if f == nil {
		return true // No filters means allow all
	}

	// Check index range
	if f.MinIndex != nil && city.ColIndex < *f.MinIndex {
		return false
	}
	if f.MaxIndex != nil && city.ColIndex > *f.MaxIndex {
		return false
	}

	// Check state, case-insensitively since it comes from query strings
	if len(f.States) > 0 {
		allowed := false
		for _, state := range f.States {
			if strings.EqualFold(state, city.State) {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}

	return true
}

// Apply returns the cities allowed by the filter, preserving order
func (f *CityFilter) Apply(cities []CityRecord) []CityRecord {
	allowed := make([]CityRecord, 0, len(cities))
	for i := range cities {
		if f.IsCityAllowed(&cities[i]) {
			allowed = append(allowed, cities[i])
		}
	}
	return allowed
}
