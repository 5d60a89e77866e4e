package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-search/internal/catalog"
	"github.com/pdiddy/scholar-search/internal/history"
	"github.com/pdiddy/scholar-search/internal/kv"
	"github.com/pdiddy/scholar-search/internal/search"
	"github.com/pdiddy/scholar-search/pkg/types"
)

func openSession(t *testing.T, store kv.Store) *Session {
	t.Helper()
	s, err := Open(context.Background(), search.NewEngine(catalog.Builtin()), store)
	require.NoError(t, err)
	return s
}

func stored(t *testing.T, store kv.Store, key string) string {
	t.Helper()
	v, ok, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok, "key %s not stored", key)
	return string(v)
}

type failingStore struct {
	kv.Store
	putErr error
}

func (f *failingStore) Put(ctx context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.Store.Put(ctx, key, value)
}

func TestOpenEmpty(t *testing.T) {
	s := openSession(t, kv.NewMemory())
	assert.Empty(t, s.History())
	assert.Empty(t, s.SavedIDs())
	assert.Empty(t, s.Current().Results)
}

func TestOpenLoadsStoredLists(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Put(ctx, HistoryKey, []byte(`["quantum","crispr"]`)))
	require.NoError(t, store.Put(ctx, SavedKey, []byte(`["3","1"]`)))

	s := openSession(t, store)
	assert.Equal(t, []string{"quantum", "crispr"}, s.History())
	assert.Equal(t, []string{"1", "3"}, s.SavedIDs())
	assert.True(t, s.IsSaved("3"))
}

func TestOpenToleratesMalformedValues(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Put(ctx, HistoryKey, []byte(`{not json`)))
	require.NoError(t, store.Put(ctx, SavedKey, []byte(`[1,2]`)))

	s := openSession(t, store)
	assert.Empty(t, s.History())
	assert.Empty(t, s.SavedIDs())

	_, err := s.Search(ctx, "quantum", types.DefaultFilters())
	require.NoError(t, err)
	assert.Equal(t, `["quantum"]`, stored(t, store, HistoryKey))
}

func TestOpenStoreError(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Close())
	_, err := Open(context.Background(), search.NewEngine(catalog.Builtin()), store)
	assert.ErrorIs(t, err, kv.ErrClosed)
}

func TestSearchRecordsHistory(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := openSession(t, store)

	out, err := s.Search(ctx, "machine learning", types.DefaultFilters())
	require.NoError(t, err)
	require.NotEmpty(t, out.Results)
	assert.Equal(t, "1", out.Results[0].ID)
	assert.Equal(t, out, s.Current())

	_, err = s.Search(ctx, "  quantum ", types.DefaultFilters())
	require.NoError(t, err)
	_, err = s.Search(ctx, "machine learning", types.DefaultFilters())
	require.NoError(t, err)

	assert.Equal(t, []string{"machine learning", "quantum"}, s.History())
	assert.Equal(t, `["machine learning","quantum"]`, stored(t, store, HistoryKey))
}

func TestSearchBlankQuery(t *testing.T) {
	store := kv.NewMemory()
	s := openSession(t, store)

	out, err := s.Search(context.Background(), "   ", types.DefaultFilters())
	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.Empty(t, s.History())
	_, ok, _ := store.Get(context.Background(), HistoryKey)
	assert.False(t, ok)
}

func TestSearchInvalidFilters(t *testing.T) {
	s := openSession(t, kv.NewMemory())
	f := types.DefaultFilters()
	f.YearMin, f.YearMax = 2024, 2015

	_, err := s.Search(context.Background(), "quantum", f)
	assert.ErrorIs(t, err, search.ErrInvalidFilters)
	assert.Empty(t, s.History())
}

func TestHistoryCap(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, kv.NewMemory())
	for _, q := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		_, err := s.Search(ctx, q, types.DefaultFilters())
		require.NoError(t, err)
	}
	h := s.History()
	assert.Len(t, h, history.Limit)
	assert.Equal(t, "l", h[0])
	assert.NotContains(t, h, "a")
	assert.NotContains(t, h, "b")
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := openSession(t, store)
	_, err := s.Search(ctx, "quantum", types.DefaultFilters())
	require.NoError(t, err)

	require.NoError(t, s.ClearHistory(ctx))
	assert.Empty(t, s.History())
	assert.Equal(t, `[]`, stored(t, store, HistoryKey))
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := openSession(t, store)

	on, err := s.Toggle(ctx, "3")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, `["3"]`, stored(t, store, SavedKey))

	on, err = s.Toggle(ctx, "1")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, `["1","3"]`, stored(t, store, SavedKey))

	on, err = s.Toggle(ctx, "3")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, `["1"]`, stored(t, store, SavedKey))
}

func TestToggleUnknownRecord(t *testing.T) {
	s := openSession(t, kv.NewMemory())
	_, err := s.Toggle(context.Background(), "99")
	assert.ErrorIs(t, err, ErrUnknownRecord)
	assert.Empty(t, s.SavedIDs())
}

func TestToggleRemovesIDMissingFromCatalog(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Put(ctx, SavedKey, []byte(`["99"]`)))
	s := openSession(t, store)

	on, err := s.Toggle(ctx, "99")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, s.SavedIDs())
}

func TestToggleRollsBackOnStoreError(t *testing.T) {
	store := &failingStore{Store: kv.NewMemory()}
	s := openSession(t, store)
	store.putErr = errors.New("disk full")

	on, err := s.Toggle(context.Background(), "2")
	assert.Error(t, err)
	assert.False(t, on)
	assert.False(t, s.IsSaved("2"))
}

func TestSavedRecordsInCatalogOrder(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Put(ctx, SavedKey, []byte(`["7","2","99"]`)))
	s := openSession(t, store)

	records, err := s.SavedRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[0].ID)
	assert.Equal(t, "7", records[1].ID)
}

func TestStatePersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	s := openSession(t, store)
	_, err := s.Search(ctx, "crispr", types.DefaultFilters())
	require.NoError(t, err)
	_, err = s.Toggle(ctx, "4")
	require.NoError(t, err)

	again := openSession(t, store)
	assert.Equal(t, []string{"crispr"}, again.History())
	assert.Equal(t, []string{"4"}, again.SavedIDs())
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, kv.NewMemory())
	_, err := s.Search(ctx, "crispr", types.DefaultFilters())
	require.NoError(t, err)

	assert.Contains(t, s.Suggest("crspr", 5), "crispr")
}

func TestRunnerAppliesToSession(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := openSession(t, store)

	r, err := s.NewRunner(search.WithLatency(20 * time.Millisecond))
	require.NoError(t, err)
	defer r.Release()

	first := r.Submit(ctx, "quantum", types.DefaultFilters())
	second := r.Submit(ctx, "crispr", types.DefaultFilters())

	_, err = first.Wait()
	assert.Error(t, err)

	out, err := second.Wait()
	require.NoError(t, err)
	assert.Equal(t, "crispr", out.Query)
	assert.Equal(t, "crispr", s.Current().Query)
	assert.Equal(t, []string{"crispr"}, s.History())
}
