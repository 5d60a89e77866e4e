// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"

	"github.com/pdiddy/scholar-search/internal/httputil"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// APIKeySecret is the secrets file name holding the remote catalog key.
const APIKeySecret = "catalog-api-key"

const maxCatalogBytes = 32 << 20

// Remote fetches a JSON record list from an HTTP endpoint. The list is
// fetched once and held for the lifetime of the Remote; a failed fetch is
// retried on the next call.
type Remote struct {
	Client    *http.Client
	URL       string
	APIKey    string
	UserAgent string

	// MaxRetries bounds retries on HTTP 429. Zero uses the httputil default.
	MaxRetries int

	mu      sync.Mutex
	records []types.Record
}

var _ Catalog = (*Remote)(nil)

// Records returns the remote collection, fetching it on first use.
func (c *Remote) Records(ctx context.Context) ([]types.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.records == nil {
		records, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.records = records
	}
	return slices.Clone(c.records), nil
}

// Close drops the cached collection.
func (c *Remote) Close() error {
	c.mu.Lock()
	c.records = nil
	c.mu.Unlock()
	return nil
}

func (c *Remote) fetch(ctx context.Context) ([]types.Record, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("remote catalog URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var records []types.Record
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogBytes)).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	static, err := NewStatic(records)
	if err != nil {
		return nil, err
	}
	if static.records == nil {
		return []types.Record{}, nil
	}
	return static.records, nil
}
