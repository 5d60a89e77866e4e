// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-search/internal/catalog"
	"github.com/pdiddy/scholar-search/internal/kv"
	"github.com/pdiddy/scholar-search/internal/search"
	"github.com/pdiddy/scholar-search/internal/session"
	"github.com/pdiddy/scholar-search/pkg/types"
)

const (
	defaultStateDir   = ".scholar-search"
	defaultMaxResults = 20
	defaultPoolSize   = 4
)

func setDefaults() {
	viper.SetDefault("catalog.backend", string(types.CatalogBuiltin))
	viper.SetDefault("catalog.timeout", 30*time.Second)
	viper.SetDefault("catalog.user_agent", "scholar-search/"+version)
	viper.SetDefault("state.backend", string(types.StateSQLite))
	viper.SetDefault("state.dir", defaultStateDir)
	viper.SetDefault("search.max_results", defaultMaxResults)
	viper.SetDefault("search.latency", time.Duration(0))
	viper.SetDefault("search.pool_size", defaultPoolSize)
	viper.SetDefault("log_level", "warn")
}

// bindFlag ties a viper key to a flag so the flag overrides config and env.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag.Name, err))
	}
}

func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// app bundles the opened catalog, state store, and session for one command.
type app struct {
	cfg     types.Config
	catalog catalog.Catalog
	store   kv.Store
	session *session.Session
}

func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			slog.Warn("closing state store", "err", err)
		}
	}
	if a.catalog != nil {
		if err := a.catalog.Close(); err != nil {
			slog.Warn("closing catalog", "err", err)
		}
	}
}

// openCatalog opens only the configured record source.
func openCatalog() (types.Config, catalog.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	cat, err := catalog.Open(cfg.Catalog, loadedSecrets)
	if err != nil {
		return cfg, nil, fmt.Errorf("opening catalog: %w", err)
	}
	return cfg, cat, nil
}

// openApp opens the catalog and state store and loads the session.
func openApp(ctx context.Context) (*app, error) {
	cfg, cat, err := openCatalog()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, catalog: cat}

	store, err := kv.Open(cfg.State)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	a.store = store

	engine := search.NewEngine(cat, search.WithMaxResults(cfg.Search.MaxResults))
	a.session, err = session.Open(ctx, engine, a.store, session.WithLogger(slog.Default()))
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}
