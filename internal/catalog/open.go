// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/scholar-search/pkg/types"
)

const defaultRemoteTimeout = 30 * time.Second

// Open constructs the catalog selected by cfg. secrets supplies the remote
// API key under APIKeySecret; it may be nil.
func Open(cfg types.CatalogConfig, secrets map[string]string) (Catalog, error) {
	switch cfg.Backend {
	case "", types.CatalogBuiltin:
		return Builtin(), nil
	case types.CatalogYAML:
		if cfg.Path == "" {
			return nil, fmt.Errorf("yaml catalog requires a path")
		}
		c, err := LoadYAML(cfg.Path)
		if err != nil {
			return nil, err
		}
		return c, nil
	case types.CatalogSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite catalog requires a path")
		}
		c, err := OpenSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		return c, nil
	case types.CatalogRemote:
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultRemoteTimeout
		}
		return &Remote{
			Client:    &http.Client{Timeout: timeout},
			URL:       cfg.URL,
			APIKey:    secrets[APIKeySecret],
			UserAgent: cfg.UserAgent,
		}, nil
	}
	return nil, fmt.Errorf("unsupported catalog backend %q: use builtin, yaml, sqlite, or remote", cfg.Backend)
}
