package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SortMode
		wantErr bool
	}{
		{"", SortRelevance, false},
		{"relevance", SortRelevance, false},
		{"date", SortDate, false},
		{"recency", SortDate, false},
		{"year", SortDate, false},
		{"citations", SortCitations, false},
		{"popularity", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSortMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCategory("thesis")
	assert.Error(t, err)
	assert.Equal(t, "Article", Category("").Label())
	assert.Equal(t, "Proceedings", CategoryProceedings.Label())
}

func TestFiltersValidate(t *testing.T) {
	assert.NoError(t, DefaultFilters().Validate())

	f := DefaultFilters()
	f.Sort = ""
	assert.NoError(t, f.Validate(), "empty sort means relevance")

	tests := []struct {
		name   string
		mutate func(*Filters)
	}{
		{"inverted years", func(f *Filters) { f.YearMin, f.YearMax = 2024, 2015 }},
		{"negative citations", func(f *Filters) { f.MinCitations = -1 }},
		{"unknown category", func(f *Filters) { f.Categories = []Category{"thesis"} }},
		{"unknown sort", func(f *Filters) { f.Sort = "popularity" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFilters()
			tt.mutate(&f)
			assert.Error(t, f.Validate())
		})
	}
}

func TestFiltersIsActive(t *testing.T) {
	assert.False(t, DefaultFilters().IsActive())

	f := DefaultFilters()
	f.MinCitations = 100
	assert.True(t, f.IsActive())

	f = DefaultFilters()
	f.Venues = []string{"Nature"}
	assert.True(t, f.IsActive())
}

func TestRecordLink(t *testing.T) {
	assert.Equal(t, "https://example.org/p", Record{URL: "https://example.org/p", DOI: "10.1/x"}.Link())
	assert.Equal(t, "https://doi.org/10.1/x", Record{DOI: "10.1/x"}.Link())
	assert.Equal(t, "", Record{}.Link())
}
