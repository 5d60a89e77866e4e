// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, clear, or complete past queries",
	Long: `History keeps the ten most recent search queries, most recent first.
Repeating a query moves it to the front instead of adding a duplicate.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print past queries, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		entries := a.session.History()
		if len(entries) == 0 {
			fmt.Println("No search history.")
			return nil
		}
		for i, q := range entries {
			fmt.Printf("%2d  %s\n", i+1, q)
		}
		return nil
	},
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every past query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.session.ClearHistory(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Search history cleared.")
		return nil
	},
}

// --- suggest subcommand ---

var historySuggestCmd = &cobra.Command{
	Use:   "suggest [input...]",
	Short: "Suggest queries from history and popular searches",
	Long: `Suggest fuzzy-matches the input against past queries and a short list
of popular searches. With no input it lists every candidate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		suggestions := a.session.Suggest(strings.Join(args, " "), limit)
		if len(suggestions) == 0 {
			fmt.Fprintln(os.Stderr, "No suggestions.")
			return nil
		}
		for _, s := range suggestions {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	historySuggestCmd.Flags().Int("limit", 5, "maximum suggestions (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historySuggestCmd)

	rootCmd.AddCommand(historyCmd)
}
