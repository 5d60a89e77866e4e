// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// FormatTable writes results as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-4s  %s  %s  %-4s  %-9s  %-5s  %s\n",
		"Rank", "ID", pad("Title", 56), pad("Authors", 18), "Year", "Citations", "Score", "Type")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, r := range out.Results {
		fmt.Fprintf(w, "%-4d  %-4s  %s  %s  %-4d  %-9d  %-5d  %s\n",
			i+1, truncate(r.ID, 4), pad(truncate(r.Title, 56), 56),
			pad(formatAuthors(r.Authors), 18), r.Year, r.Citations, r.Relevance,
			r.Category.Label())
	}

	fmt.Fprintf(w, "\n%d results", len(out.Results))
	if out.Total > len(out.Results) {
		fmt.Fprintf(w, " (of %d matches)", out.Total)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	results := out.Results
	if results == nil {
		results = []types.SearchResult{}
	}
	return enc.Encode(results)
}

// FormatRecord writes a detailed view of one record to w.
func FormatRecord(r types.Record, w io.Writer) {
	fmt.Fprintln(w, r.Title)
	fmt.Fprintln(w, strings.Repeat("=", min(runewidth.StringWidth(r.Title), 80)))
	fmt.Fprintf(w, "Authors:   %s\n", strings.Join(r.Authors, "; "))
	fmt.Fprintf(w, "Venue:     %s (%d)\n", r.Venue, r.Year)
	fmt.Fprintf(w, "Type:      %s\n", r.Category.Label())
	fmt.Fprintf(w, "Citations: %d\n", r.Citations)
	if r.DOI != "" {
		fmt.Fprintf(w, "DOI:       %s\n", r.DOI)
	}
	if link := r.Link(); link != "" {
		fmt.Fprintf(w, "Link:      %s\n", link)
	}
	if len(r.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords:  %s\n", strings.Join(r.Keywords, ", "))
	}
	fmt.Fprintf(w, "\n%s\n", r.Abstract)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 18)
	default:
		return truncate(authors[0], 11) + " et al."
	}
}

// truncate shortens s to at most width display columns.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
