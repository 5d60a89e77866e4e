// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the application state around the search engine:
// the current results, the search history, and the saved set. History and
// saved IDs are read from a kv.Store once at Open and rewritten as JSON
// lists on every change.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pdiddy/scholar-search/internal/catalog"
	"github.com/pdiddy/scholar-search/internal/history"
	"github.com/pdiddy/scholar-search/internal/kv"
	"github.com/pdiddy/scholar-search/internal/saved"
	"github.com/pdiddy/scholar-search/internal/search"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// Store keys.
const (
	HistoryKey = "scholarSearchHistory"
	SavedKey   = "scholarSavedPapers"
)

// ErrUnknownRecord is returned when saving an ID that is not in the catalog.
var ErrUnknownRecord = errors.New("unknown record")

// Session is safe for concurrent use.
type Session struct {
	engine *search.Engine
	store  kv.Store
	logger *slog.Logger

	mu      sync.Mutex
	history *history.History
	saved   *saved.Set
	current search.Output
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open loads history and saved IDs from store. A stored value that is not
// a JSON list of strings is logged and treated as empty; it is overwritten
// on the next change. Store read errors are returned.
func Open(ctx context.Context, engine *search.Engine, store kv.Store, opts ...Option) (*Session, error) {
	s := &Session{engine: engine, store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	queries, err := s.loadList(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}
	ids, err := s.loadList(ctx, SavedKey)
	if err != nil {
		return nil, err
	}

	s.history = history.New(queries)
	s.saved = saved.New(ids)
	return s, nil
}

func (s *Session) loadList(ctx context.Context, key string) ([]string, error) {
	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("ignoring malformed stored value", "key", key, "err", err)
		return nil, nil
	}
	return list, nil
}

func (s *Session) saveList(ctx context.Context, key string, list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Engine returns the search engine.
func (s *Session) Engine() *search.Engine { return s.engine }

// Search runs query synchronously, makes the output current, and records
// the query in history.
func (s *Session) Search(ctx context.Context, query string, f types.Filters) (search.Output, error) {
	out, err := s.engine.Search(ctx, query, f)
	if err != nil {
		return out, err
	}
	return out, s.apply(ctx, out)
}

// NewRunner returns a Runner whose applied outputs update this session the
// same way Search does. The caller must Release it.
func (s *Session) NewRunner(opts ...search.RunnerOption) (*search.Runner, error) {
	opts = append(opts, search.WithApply(func(out search.Output) {
		if err := s.apply(context.Background(), out); err != nil {
			s.logger.Error("recording search", "query", out.Query, "err", err)
		}
	}))
	return search.NewRunner(s.engine.Search, opts...)
}

func (s *Session) apply(ctx context.Context, out search.Output) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = out
	if search.IsBlank(out.Query) {
		return nil
	}
	if !s.history.Add(strings.TrimSpace(out.Query)) {
		return nil
	}
	return s.saveList(ctx, HistoryKey, s.history.Entries())
}

// Current returns the most recently applied output.
func (s *Session) Current() search.Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// History returns past queries, most recent first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// ClearHistory removes every past query.
func (s *Session) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear()
	return s.saveList(ctx, HistoryKey, s.history.Entries())
}

// Suggest returns up to limit queries from history and the popular list
// that fuzzy-match input.
func (s *Session) Suggest(input string, limit int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Suggest(input, limit)
}

// Toggle flips the saved state of id and returns the new state. Saving
// requires id to exist in the catalog; unsaving does not. If the change
// cannot be persisted it is rolled back.
func (s *Session) Toggle(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.saved.Has(id) {
		ok, err := catalog.Contains(ctx, s.engine.Source(), id)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownRecord, id)
		}
	}

	now := s.saved.Toggle(id)
	if err := s.saveList(ctx, SavedKey, s.saved.IDs()); err != nil {
		s.saved.Toggle(id)
		return !now, err
	}
	return now, nil
}

// IsSaved reports whether id is saved.
func (s *Session) IsSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.Has(id)
}

// SavedIDs returns the saved IDs, sorted.
func (s *Session) SavedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.IDs()
}

// SavedRecords returns saved records present in the catalog, in catalog
// order.
func (s *Session) SavedRecords(ctx context.Context) ([]types.Record, error) {
	records, err := s.engine.Source().Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.Select(records), nil
}
