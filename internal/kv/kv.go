// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kv stores small values under string keys. Session state
// (history, saved IDs) is persisted through a Store so the backend can be
// SQLite, Badger, or memory without changing callers.
package kv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store is closed")

// Store is a key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put replaces the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

const (
	sqliteFile = "state.db"
	badgerDir  = "badger"
)

// Open constructs the store selected by cfg under cfg.Dir.
func Open(cfg types.StateConfig) (Store, error) {
	switch cfg.Backend {
	case "", types.StateSQLite:
		s, err := OpenSQLite(filepath.Join(cfg.Dir, sqliteFile))
		if err != nil {
			return nil, err
		}
		return s, nil
	case types.StateBadger:
		b, err := OpenBadger(filepath.Join(cfg.Dir, badgerDir), false)
		if err != nil {
			return nil, err
		}
		return b, nil
	case types.StateMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unsupported state backend %q: use sqlite, badger, or memory", cfg.Backend)
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.Mutex
	data   map[string][]byte
	closed bool
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false, ErrClosed
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
