// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-search CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-search/internal/logging"
	"github.com/pdiddy/scholar-search/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the scholar-search CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-search",
	Short: "Relevance search over a catalog of scholarly records",
	Long: `scholar-search ranks scholarly records against a free-text query,
narrows them by year, type, venue, and citation count, and keeps a history
of past queries and a set of saved records between runs.

Records come from the built-in catalog, a YAML file, a SQLite database, or
a remote JSON endpoint. History and saved records live in a local store
(sqlite or badger) under the state directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(viper.GetString("log_level"), os.Stderr)
		slog.SetDefault(logger)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			slog.Debug("loaded secrets", "keys", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./scholar-search.yaml or ~/.config/scholar-search/scholar-search.yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("catalog", "builtin", "record source: builtin, yaml, sqlite, remote")
	flags.String("catalog-path", "", "YAML file or SQLite database for file-backed catalogs")
	flags.String("catalog-url", "", "endpoint serving a JSON record list for the remote catalog")
	flags.String("state", "sqlite", "store for history and saved records: sqlite, badger, memory")
	flags.String("state-dir", defaultStateDir, "directory holding the state store")

	bindFlag("log_level", flags.Lookup("log-level"))
	bindFlag("catalog.backend", flags.Lookup("catalog"))
	bindFlag("catalog.path", flags.Lookup("catalog-path"))
	bindFlag("catalog.url", flags.Lookup("catalog-url"))
	bindFlag("state.backend", flags.Lookup("state"))
	bindFlag("state.dir", flags.Lookup("state-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-search"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
