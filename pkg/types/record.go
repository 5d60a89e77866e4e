// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for scholar-search.
// Records, filter criteria, search results, and configuration live here so
// that catalog backends, the search engine, and the CLI agree on one shape.
package types

import "fmt"

// Category classifies a record's publication type.
type Category string

const (
	CategoryArticle     Category = "article"
	CategoryReview      Category = "review"
	CategoryProceedings Category = "proceedings"
	CategoryBook        Category = "book"
)

// Categories lists every valid Category in display order.
var Categories = []Category{CategoryArticle, CategoryReview, CategoryProceedings, CategoryBook}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryArticle, CategoryReview, CategoryProceedings, CategoryBook:
		return true
	}
	return false
}

// Label returns the human-readable name used in listings.
func (c Category) Label() string {
	switch c {
	case CategoryReview:
		return "Review"
	case CategoryProceedings:
		return "Proceedings"
	case CategoryBook:
		return "Book"
	default:
		return "Article"
	}
}

// ParseCategory converts s into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q: use article, review, proceedings, or book", s)
	}
	return c, nil
}

// Record is a single searchable bibliographic entry. Records are read-only
// for the lifetime of the process.
type Record struct {
	// ID is unique within a catalog.
	ID string `json:"id" yaml:"id"`

	Title    string `json:"title" yaml:"title"`
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists display names in source order (e.g. "Chen, L.").
	Authors []string `json:"authors" yaml:"authors"`

	Year int `json:"year" yaml:"year"`

	// Venue is the journal, conference, or publisher name.
	Venue string `json:"venue" yaml:"venue"`

	// Citations is the citation count; never negative.
	Citations int `json:"citations" yaml:"citations"`

	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	Keywords []string `json:"keywords" yaml:"keywords"`

	Category Category `json:"category" yaml:"category"`
}

// Link returns the external link for the record: the explicit URL if set,
// otherwise a doi.org link, otherwise "".
func (r Record) Link() string {
	if r.URL != "" {
		return r.URL
	}
	if r.DOI != "" {
		return "https://doi.org/" + r.DOI
	}
	return ""
}

// SearchResult is a Record annotated with its relevance to one query.
type SearchResult struct {
	Record `yaml:",inline"`

	// Relevance is in [0,100] and only meaningful for the query that produced it.
	Relevance int `json:"relevance" yaml:"relevance"`
}
