// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/catalog"
	"github.com/pdiddy/scholar-search/internal/search"
	"github.com/pdiddy/scholar-search/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, import, or export the record catalog",
	Long: `Catalog works with the configured record source. Use import to load a
YAML record file into a SQLite catalog, and export to write the current
catalog out as YAML.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every record in catalog order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat, err := openCatalog()
		if err != nil {
			return err
		}
		defer cat.Close()

		records, err := cat.Records(cmd.Context())
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if records == nil {
				records = []types.Record{}
			}
			return enc.Encode(records)
		}

		out := search.Output{Total: len(records)}
		for _, r := range records {
			out.Results = append(out.Results, types.SearchResult{Record: r})
		}
		search.FormatTable(out, os.Stdout)
		return nil
	},
}

// --- venues subcommand ---

var catalogVenuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Print the venues present in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, _ := cmd.Flags().GetBool("options")
		if options {
			for _, v := range catalog.VenueOptions {
				fmt.Println(v)
			}
			return nil
		}

		_, cat, err := openCatalog()
		if err != nil {
			return err
		}
		defer cat.Close()

		records, err := cat.Records(cmd.Context())
		if err != nil {
			return err
		}
		for _, v := range catalog.Venues(records) {
			fmt.Println(v)
		}
		return nil
	},
}

// --- import subcommand ---

var catalogImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Load a YAML record file into a SQLite catalog",
	Long: `Import validates the records in a YAML file and upserts them into the
SQLite catalog at --db (default: the configured catalog path). Records
already present are replaced and keep their catalog position.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = cfg.Catalog.Path
		}
		if dbPath == "" {
			return fmt.Errorf("database path required: provide --db or catalog.path")
		}

		src, err := catalog.LoadYAML(args[0])
		if err != nil {
			return err
		}
		records, err := src.Records(cmd.Context())
		if err != nil {
			return err
		}

		db, err := catalog.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Import(cmd.Context(), records); err != nil {
			return err
		}
		n, err := db.Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d records into %s (%d total)\n", len(records), dbPath, n)
		return nil
	},
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export <file.yaml>",
	Short: "Write the current catalog to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat, err := openCatalog()
		if err != nil {
			return err
		}
		defer cat.Close()

		records, err := cat.Records(cmd.Context())
		if err != nil {
			return err
		}
		if err := catalog.WriteYAML(args[0], records); err != nil {
			return err
		}
		fmt.Printf("Exported %d records to %s\n", len(records), args[0])
		return nil
	},
}

func init() {
	catalogListCmd.Flags().Bool("json", false, "output records as JSON")
	catalogVenuesCmd.Flags().Bool("options", false, "print the standard venue filter options instead")
	catalogImportCmd.Flags().String("db", "", "SQLite catalog to import into (default: catalog.path)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogVenuesCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
