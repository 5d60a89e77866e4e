// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search scores a record catalog against free-text queries,
// narrows the scored records by filter criteria, and orders them.
//
// Engine runs one search synchronously. Runner schedules searches as
// deferred tasks on a worker pool where only the most recently submitted
// search is ever applied.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/scholar-search/internal/catalog"
	"github.com/pdiddy/scholar-search/pkg/types"
)

var (
	// ErrInvalidFilters is returned when filter criteria are inconsistent.
	ErrInvalidFilters = errors.New("invalid filters")

	// ErrSuperseded is returned for a search replaced by a later submission.
	ErrSuperseded = errors.New("search superseded by a newer request")
)

// Output holds the ranked results of one search.
type Output struct {
	Query   string               `json:"query" yaml:"query"`
	Filters types.Filters        `json:"filters" yaml:"filters"`
	Results []types.SearchResult `json:"results" yaml:"results"`

	// Total counts the matches before the MaxResults cap.
	Total int `json:"total" yaml:"total"`
}

// SearchFunc runs a single search.
type SearchFunc func(ctx context.Context, query string, f types.Filters) (Output, error)

// Engine scores records from an injected catalog.
type Engine struct {
	src        catalog.Source
	maxResults int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMaxResults caps the number of results. Zero or less means no cap.
func WithMaxResults(n int) EngineOption {
	return func(e *Engine) { e.maxResults = n }
}

// NewEngine returns an Engine over src.
func NewEngine(src catalog.Source, opts ...EngineOption) *Engine {
	e := &Engine{src: src}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Source returns the catalog the engine scores against.
func (e *Engine) Source() catalog.Source { return e.src }

// IsBlank reports whether query has no searchable words.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Search scores every record against query, keeps those that satisfy f,
// and orders them by f.Sort. A blank query yields an empty Output.
func (e *Engine) Search(ctx context.Context, query string, f types.Filters) (Output, error) {
	out := Output{Query: query, Filters: f}
	if IsBlank(query) {
		return out, nil
	}
	if err := f.Validate(); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidFilters, err)
	}
	mode, _ := types.ParseSortMode(string(f.Sort))

	records, err := e.candidates(ctx, f)
	if err != nil {
		return out, err
	}

	results := make([]types.SearchResult, 0, len(records))
	for _, r := range records {
		if !Matches(f, r) {
			continue
		}
		results = append(results, types.SearchResult{Record: r, Relevance: Score(query, r)})
	}

	sortResults(results, mode)

	out.Total = len(results)
	if e.maxResults > 0 && len(results) > e.maxResults {
		results = results[:e.maxResults]
	}
	out.Results = results
	return out, nil
}

func (e *Engine) candidates(ctx context.Context, f types.Filters) ([]types.Record, error) {
	if fl, ok := e.src.(catalog.Filterer); ok {
		records, err := fl.Filter(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("filtering catalog: %w", err)
		}
		return records, nil
	}
	records, err := e.src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return records, nil
}
