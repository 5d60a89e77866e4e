// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/search"
	"github.com/pdiddy/scholar-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Rank catalog records against a free-text query",
	Long: `Search scores every record in the catalog against the query, keeps the
records that satisfy the filters, and orders them by relevance, date, or
citations. Title matches weigh most, then keywords, abstract, authors, and
venue. The query is recorded in history.

A blank query returns no results and is not recorded.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	f, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	runner, err := a.session.NewRunner(
		search.WithLatency(a.cfg.Search.Latency),
		search.WithPoolSize(a.cfg.Search.PoolSize),
	)
	if err != nil {
		return err
	}
	defer runner.Release()

	out, err := runner.Submit(cmd.Context(), query, f).Wait()
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	cslOutput, _ := cmd.Flags().GetBool("csl")
	switch {
	case cslOutput:
		return search.FormatCSL(out, os.Stdout)
	case jsonOutput:
		return search.FormatJSON(out, os.Stdout)
	}
	if search.IsBlank(query) {
		fmt.Fprintln(os.Stderr, "warning: empty query, nothing to search")
	}
	search.FormatTable(out, os.Stdout)
	return nil
}

func filtersFromFlags(cmd *cobra.Command) (types.Filters, error) {
	f := types.DefaultFilters()
	f.YearMin, _ = cmd.Flags().GetInt("from")
	f.YearMax, _ = cmd.Flags().GetInt("to")
	f.MinCitations, _ = cmd.Flags().GetInt("min-citations")
	f.Venues, _ = cmd.Flags().GetStringArray("venue")

	typeNames, _ := cmd.Flags().GetStringSlice("type")
	for _, name := range typeNames {
		c, err := types.ParseCategory(name)
		if err != nil {
			return f, err
		}
		f.Categories = append(f.Categories, c)
	}

	sortName, _ := cmd.Flags().GetString("sort")
	mode, err := types.ParseSortMode(sortName)
	if err != nil {
		return f, err
	}
	f.Sort = mode
	return f, nil
}

func init() {
	searchCmd.Flags().Int("from", types.DefaultYearMin, "earliest publication year")
	searchCmd.Flags().Int("to", types.DefaultYearMax, "latest publication year")
	searchCmd.Flags().StringSlice("type", nil, "restrict to record types: article, review, proceedings, book (repeatable)")
	searchCmd.Flags().StringArray("venue", nil, "restrict to a venue (repeatable)")
	searchCmd.Flags().Int("min-citations", 0, "minimum citation count")
	searchCmd.Flags().String("sort", string(types.SortRelevance), "sort order: relevance, date, citations")
	searchCmd.Flags().Int("max-results", defaultMaxResults, "maximum number of results to print (0 = all)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("csl", false, "output results as CSL YAML")
	searchCmd.MarkFlagsMutuallyExclusive("json", "csl")

	bindFlag("search.max_results", searchCmd.Flags().Lookup("max-results"))

	rootCmd.AddCommand(searchCmd)
}
