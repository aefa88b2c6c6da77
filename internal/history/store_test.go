package history_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrhub/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openStore(t)

	at := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	require.NoError(t, store.Record(history.Entry{
		RequestedAt: at,
		Operation:   "add",
		Catalog:     "movie",
		Query:       "603",
		Outcome:     "created",
	}))
	require.NoError(t, store.Record(history.Entry{
		Operation: "add",
		Catalog:   "series",
		Query:     "371980",
		Outcome:   "already_present",
	}))

	entries, err := store.List(10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "371980", entries[0].Query)
	assert.Equal(t, "603", entries[1].Query)
	assert.True(t, entries[1].RequestedAt.Equal(at))
	assert.False(t, entries[0].RequestedAt.IsZero(), "zero timestamp defaults to now")
}

func TestList_Limit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(history.Entry{
			Operation: "status", Catalog: "movie", Query: "q", Outcome: "ok",
		}))
	}

	entries, err := store.List(3)

	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestList_Empty(t *testing.T) {
	store := openStore(t)

	entries, err := store.List(0)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	store, err := history.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(history.Entry{
		Operation: "add", Catalog: "movie", Query: "603", Outcome: "created",
	}))
	require.NoError(t, store.Close())

	reopened, err := history.Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.List(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
