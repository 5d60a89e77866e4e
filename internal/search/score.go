// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"slices"
	"strings"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// Score weights.
const (
	titleWordWeight   = 30
	titlePrefixWeight = 10
	abstractWeight    = 15
	keywordWeight     = 25
	authorWeight      = 10
	venueWeight       = 15

	MaxScore = 100
)

// Score returns the relevance of r to query in [0, MaxScore].
//
// Query words are matched inside the title and abstract. Keywords, authors,
// and the venue are matched the other way round: they score when they
// appear inside the query.
func Score(query string, r types.Record) int {
	q := strings.ToLower(query)
	words := strings.Fields(q)
	if len(words) == 0 {
		return 0
	}

	score := 0

	title := strings.ToLower(r.Title)
	for _, w := range words {
		if strings.Contains(title, w) {
			score += titleWordWeight
		}
		if strings.HasPrefix(title, w) {
			score += titlePrefixWeight
		}
	}

	abstract := strings.ToLower(r.Abstract)
	for _, w := range words {
		if strings.Contains(abstract, w) {
			score += abstractWeight
		}
	}

	for _, k := range r.Keywords {
		if k != "" && strings.Contains(q, strings.ToLower(k)) {
			score += keywordWeight
		}
	}

	for _, a := range r.Authors {
		if a != "" && strings.Contains(q, strings.ToLower(a)) {
			score += authorWeight
		}
	}

	if r.Venue != "" && strings.Contains(q, strings.ToLower(r.Venue)) {
		score += venueWeight
	}

	return min(score, MaxScore)
}

// Matches reports whether r satisfies every criterion in f.
func Matches(f types.Filters, r types.Record) bool {
	if r.Year < f.YearMin || r.Year > f.YearMax {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.Category) {
		return false
	}
	if len(f.Venues) > 0 && !slices.Contains(f.Venues, r.Venue) {
		return false
	}
	return r.Citations >= f.MinCitations
}

// sortResults orders results in place by mode. Ties keep their input order.
func sortResults(results []types.SearchResult, mode types.SortMode) {
	var key func(types.SearchResult) int
	switch mode {
	case types.SortDate:
		key = func(r types.SearchResult) int { return r.Year }
	case types.SortCitations:
		key = func(r types.SearchResult) int { return r.Citations }
	default:
		key = func(r types.SearchResult) int { return r.Relevance }
	}
	slices.SortStableFunc(results, func(a, b types.SearchResult) int {
		return key(b) - key(a)
	})
}
