// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps the user's recent search queries: most recent
// first, without duplicates, and never more than Limit entries.
package history

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Limit is the maximum number of queries retained.
const Limit = 10

// Popular lists suggested queries offered alongside history.
var Popular = []string{
	"Machine Learning",
	"Climate Change",
	"Quantum Computing",
	"CRISPR",
	"Artificial Intelligence",
}

// History is an ordered list of past queries. The zero value is empty and
// ready to use. History is not safe for concurrent use.
type History struct {
	entries []string
}

// New returns a History seeded with entries, normalized so the invariants
// hold: blanks dropped, later duplicates dropped, capped at Limit.
func New(entries []string) *History {
	h := &History{}
	for _, e := range entries {
		if strings.TrimSpace(e) == "" || slices.Contains(h.entries, e) {
			continue
		}
		h.entries = append(h.entries, e)
		if len(h.entries) == Limit {
			break
		}
	}
	return h
}

// Add moves query to the front, removing any earlier occurrence. Blank
// queries are ignored. It reports whether the history changed.
func (h *History) Add(query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[0] == query {
		return false
	}
	h.entries = slices.DeleteFunc(h.entries, func(e string) bool { return e == query })
	h.entries = slices.Insert(h.entries, 0, query)
	if len(h.entries) > Limit {
		h.entries = h.entries[:Limit]
	}
	return true
}

// Entries returns a copy of the queries, most recent first. It is never nil.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of queries held.
func (h *History) Len() int { return len(h.entries) }

// Clear removes every query. It reports whether the history changed.
func (h *History) Clear() bool {
	if len(h.entries) == 0 {
		return false
	}
	h.entries = nil
	return true
}

// Suggest returns history entries and popular queries that fuzzy-match
// input, best match first. History entries win ties, and duplicates
// (case-insensitive) are listed once. A blank input returns the history
// followed by the popular queries.
func (h *History) Suggest(input string, limit int) []string {
	candidates := h.candidates()
	var out []string
	if strings.TrimSpace(input) == "" {
		out = candidates
	} else {
		for _, m := range fuzzy.Find(input, candidates) {
			out = append(out, m.Str)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (h *History) candidates() []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]string{h.entries, Popular} {
		for _, s := range list {
			key := strings.ToLower(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}
