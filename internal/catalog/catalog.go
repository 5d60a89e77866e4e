// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog provides the immutable record collections the search
// engine scores against. A Source is injected into the engine so the
// built-in collection can be swapped for a file, database, or remote
// backend without touching scoring logic.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// ErrNotFound is returned when a record ID is not in the catalog.
var ErrNotFound = errors.New("record not found")

// Source yields the full record collection in catalog order.
type Source interface {
	Records(ctx context.Context) ([]types.Record, error)
}

// Filterer is implemented by sources that can narrow records by filter
// criteria before scoring (e.g. SQL pushdown). Callers must still apply
// the criteria themselves; a Filterer may return a superset.
type Filterer interface {
	Filter(ctx context.Context, f types.Filters) ([]types.Record, error)
}

// Catalog is a Source that holds resources.
type Catalog interface {
	Source
	io.Closer
}

// Lookup returns the record with the given ID.
func Lookup(ctx context.Context, src Source, id string) (types.Record, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return types.Record{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return types.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Contains reports whether id names a record in src.
func Contains(ctx context.Context, src Source, id string) (bool, error) {
	_, err := Lookup(ctx, src, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Validate checks a record collection: IDs present and unique, categories
// known, citation counts not negative.
func Validate(records []types.Record) error {
	seen := make(map[string]bool, len(records))
	var errs []error
	for i, r := range records {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("record %d: missing id", i))
			continue
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("record %s: duplicate id", r.ID))
		}
		seen[r.ID] = true
		if !r.Category.Valid() {
			errs = append(errs, fmt.Errorf("record %s: unknown category %q", r.ID, r.Category))
		}
		if r.Citations < 0 {
			errs = append(errs, fmt.Errorf("record %s: negative citation count", r.ID))
		}
	}
	return errors.Join(errs...)
}

// Static is an in-memory Source over a fixed collection.
type Static struct {
	records []types.Record
}

// NewStatic returns a Source over a copy of records. Records with an empty
// category are treated as articles.
func NewStatic(records []types.Record) (*Static, error) {
	cp := slices.Clone(records)
	for i := range cp {
		if cp[i].Category == "" {
			cp[i].Category = types.CategoryArticle
		}
	}
	if err := Validate(cp); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &Static{records: cp}, nil
}

// Records returns a copy of the collection.
func (s *Static) Records(ctx context.Context) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.records), nil
}

// Len returns the number of records.
func (s *Static) Len() int { return len(s.records) }

// Close is a no-op.
func (s *Static) Close() error { return nil }

// Venues returns the distinct venue names in catalog order.
func Venues(records []types.Record) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Venue == "" || seen[r.Venue] {
			continue
		}
		seen[r.Venue] = true
		out = append(out, r.Venue)
	}
	return out
}
