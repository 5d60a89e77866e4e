// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package saved tracks the user's bookmarked record IDs.
package saved

import (
	"slices"
	"strings"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// Set is an unordered set of record IDs. The zero value is not usable; use
// New. Set is not safe for concurrent use.
type Set struct {
	ids map[string]struct{}
}

// New returns a Set holding ids. Blank IDs are dropped.
func New(ids []string) *Set {
	s := &Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

// Toggle adds id if absent and removes it if present. It returns the new
// membership state.
func (s *Set) Toggle(id string) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether id is saved.
func (s *Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of saved IDs.
func (s *Set) Len() int { return len(s.ids) }

// IDs returns the saved IDs sorted, for stable persistence. It is never nil.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Select returns the records whose IDs are saved, in the order given.
func (s *Set) Select(records []types.Record) []types.Record {
	var out []types.Record
	for _, r := range records {
		if s.Has(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
