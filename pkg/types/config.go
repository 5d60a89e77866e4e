// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CatalogBackend identifies where records come from.
type CatalogBackend string

const (
	CatalogBuiltin CatalogBackend = "builtin"
	CatalogYAML    CatalogBackend = "yaml"
	CatalogSQLite  CatalogBackend = "sqlite"
	CatalogRemote  CatalogBackend = "remote"
)

// CatalogConfig holds settings for the record source.
type CatalogConfig struct {
	// Backend selects the source: builtin, yaml, sqlite, or remote.
	Backend CatalogBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Path is the YAML file or SQLite database for file-backed catalogs.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// URL is the endpoint serving a JSON record list for the remote backend.
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	// Timeout is the HTTP request timeout for the remote backend.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent with remote catalog requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// StateBackend identifies the key-value store holding history and saved IDs.
type StateBackend string

const (
	StateSQLite StateBackend = "sqlite"
	StateBadger StateBackend = "badger"
	StateMemory StateBackend = "memory"
)

// StateConfig holds settings for persisted user state.
type StateConfig struct {
	// Backend selects the store: sqlite, badger, or memory.
	Backend StateBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Dir is the directory holding the store's files.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// SearchConfig holds settings for the search engine.
type SearchConfig struct {
	// MaxResults caps the number of results returned. Zero means no cap.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// Latency delays each submitted search before it runs.
	Latency time.Duration `json:"latency" yaml:"latency" mapstructure:"latency"`

	// PoolSize is the number of workers running submitted searches.
	PoolSize int `json:"pool_size" yaml:"pool_size" mapstructure:"pool_size"`
}

// Config groups all settings.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	State   StateConfig   `json:"state" yaml:"state" mapstructure:"state"`
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
}
