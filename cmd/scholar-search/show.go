// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/catalog"
	"github.com/pdiddy/scholar-search/internal/search"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one record in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		r, err := catalog.Lookup(cmd.Context(), a.catalog, args[0])
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}

		search.FormatRecord(r, os.Stdout)
		if a.session.IsSaved(r.ID) {
			fmt.Println("\n[saved]")
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output the record as JSON")

	rootCmd.AddCommand(showCmd)
}
