package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// newSearchFlagsCmd returns a command carrying the search flags, isolated
// from the package-level searchCmd.
func newSearchFlagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "search"}
	cmd.Flags().Int("from", types.DefaultYearMin, "")
	cmd.Flags().Int("to", types.DefaultYearMax, "")
	cmd.Flags().StringSlice("type", nil, "")
	cmd.Flags().StringArray("venue", nil, "")
	cmd.Flags().Int("min-citations", 0, "")
	cmd.Flags().String("sort", string(types.SortRelevance), "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestFiltersFromFlagsDefaults(t *testing.T) {
	f, err := filtersFromFlags(newSearchFlagsCmd(t))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultYearMin, f.YearMin)
	assert.Equal(t, types.DefaultYearMax, f.YearMax)
	assert.Empty(t, f.Categories)
	assert.Empty(t, f.Venues)
	assert.Equal(t, types.SortRelevance, f.Sort)
}

func TestFiltersFromFlags(t *testing.T) {
	cmd := newSearchFlagsCmd(t,
		"--from", "2020", "--to", "2022",
		"--type", "review", "--type", "book",
		"--venue", "Nature", "--venue", "Physical Review Letters",
		"--min-citations", "150",
		"--sort", "citations",
	)
	f, err := filtersFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, 2020, f.YearMin)
	assert.Equal(t, 2022, f.YearMax)
	assert.Equal(t, []types.Category{types.CategoryReview, types.CategoryBook}, f.Categories)
	assert.Equal(t, []string{"Nature", "Physical Review Letters"}, f.Venues)
	assert.Equal(t, 150, f.MinCitations)
	assert.Equal(t, types.SortCitations, f.Sort)
}

func TestFiltersFromFlagsRejectsUnknownValues(t *testing.T) {
	_, err := filtersFromFlags(newSearchFlagsCmd(t, "--type", "thesis"))
	assert.Error(t, err)

	_, err = filtersFromFlags(newSearchFlagsCmd(t, "--sort", "popularity"))
	assert.Error(t, err)
}
