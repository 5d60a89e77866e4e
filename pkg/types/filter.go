// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// SortMode selects the ordering of search results.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDate      SortMode = "date"
	SortCitations SortMode = "citations"
)

// ParseSortMode converts s into a SortMode. An empty string selects
// relevance; "recency" is accepted as an alias of date.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", string(SortRelevance):
		return SortRelevance, nil
	case string(SortDate), "recency", "year":
		return SortDate, nil
	case string(SortCitations):
		return SortCitations, nil
	}
	return "", fmt.Errorf("unknown sort mode %q: use relevance, date, or citations", s)
}

// Default year range used when the user has not narrowed it.
const (
	DefaultYearMin = 2015
	DefaultYearMax = 2024
)

// Filters holds user-selected constraints that narrow a result set
// independently of relevance.
type Filters struct {
	// YearMin and YearMax bound the publication year, inclusive.
	YearMin int `json:"year_min" yaml:"year_min"`
	YearMax int `json:"year_max" yaml:"year_max"`

	// Categories restricts results to these categories. Empty means any.
	Categories []Category `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Venues restricts results to exact venue names. Empty means any.
	Venues []string `json:"venues,omitempty" yaml:"venues,omitempty"`

	// MinCitations discards records cited fewer times.
	MinCitations int `json:"min_citations" yaml:"min_citations"`

	Sort SortMode `json:"sort" yaml:"sort"`
}

// DefaultFilters returns the unnarrowed criteria.
func DefaultFilters() Filters {
	return Filters{
		YearMin: DefaultYearMin,
		YearMax: DefaultYearMax,
		Sort:    SortRelevance,
	}
}

// IsActive reports whether any criterion beyond the year range is set.
func (f Filters) IsActive() bool {
	return len(f.Categories) > 0 || len(f.Venues) > 0 || f.MinCitations > 0
}

// Validate checks the criteria for internal consistency.
func (f Filters) Validate() error {
	var errs []error
	if f.YearMin > f.YearMax {
		errs = append(errs, fmt.Errorf("year range %d-%d is empty", f.YearMin, f.YearMax))
	}
	if f.MinCitations < 0 {
		errs = append(errs, fmt.Errorf("minimum citations %d is negative", f.MinCitations))
	}
	for _, c := range f.Categories {
		if !c.Valid() {
			errs = append(errs, fmt.Errorf("unknown category %q", c))
		}
	}
	if _, err := ParseSortMode(string(f.Sort)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
