// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/search"
	"github.com/pdiddy/scholar-search/pkg/types"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List or toggle saved records",
	Long: `Saved manages the set of bookmarked records. IDs are kept between runs
in the state store; records no longer in the catalog are skipped when
listing.`,
}

// --- list subcommand ---

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print saved records in catalog order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.session.SavedRecords(cmd.Context())
		if err != nil {
			return err
		}
		if missing := len(a.session.SavedIDs()) - len(records); missing > 0 {
			fmt.Fprintf(os.Stderr, "warning: %d saved record(s) not in the current catalog\n", missing)
		}

		out := search.Output{Total: len(records)}
		for _, r := range records {
			out.Results = append(out.Results, types.SearchResult{Record: r})
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return search.FormatJSON(out, os.Stdout)
		}
		if len(records) == 0 {
			fmt.Println("No saved records.")
			return nil
		}
		search.FormatTable(out, os.Stdout)
		return nil
	},
}

// --- toggle subcommand ---

var savedToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Save a record, or unsave it if already saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		saved, err := a.session.Toggle(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if saved {
			fmt.Printf("Saved %s\n", args[0])
		} else {
			fmt.Printf("Removed %s\n", args[0])
		}
		return nil
	},
}

func init() {
	savedListCmd.Flags().Bool("json", false, "output records as JSON")

	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedToggleCmd)

	rootCmd.AddCommand(savedCmd)
}
