package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/geocache/internal/core/domain"
)

func openTempStore(t *testing.T, slot string) *Store {
	t.Helper()
	store, err := Open(t.Context(), filepath.Join(t.TempDir(), "world.db"), slot)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRecord(t *testing.T) *domain.SaveRecord {
	t.Helper()
	rules := domain.DefaultRules()
	rules.Radius = 1
	w := domain.NewWorld(rules, func(string) float64 { return 0 })
	w.Discover()
	w.Move(domain.East)

	cache, ok := w.Cache(domain.Cell{})
	require.True(t, ok)
	_, err := w.CollectFrom(domain.Cell{}, cache.Coins()[0].ID)
	require.NoError(t, err)

	rec := w.Record()
	rec.SavedAt = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
	return rec
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(t.Context(), "  ", "")
	require.ErrorContains(t, err, domain.ErrStoreOpenFailed.Error())
}

func TestOpenDefaultsSlot(t *testing.T) {
	store := openTempStore(t, "")
	assert.Equal(t, domain.DefaultSlot, store.Slot())
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".geocache", "world.db")
	store, err := Open(t.Context(), path, "default")
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.FileExists(t, path)
}

func TestOpenAppliesPragmas(t *testing.T) {
	store := openTempStore(t, "")

	tests := []struct {
		pragma string
		want   string
	}{
		{pragma: "journal_mode", want: "wal"},
		{pragma: "foreign_keys", want: "1"},
		{pragma: "busy_timeout", want: "5000"},
		{pragma: "synchronous", want: "1"},
	}
	for _, tt := range tests {
		t.Run(tt.pragma, func(t *testing.T) {
			var got string
			require.NoError(t, store.db.QueryRowContext(t.Context(), "PRAGMA "+tt.pragma).Scan(&got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenTwiceAppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")

	first, err := Open(t.Context(), path, "a")
	require.NoError(t, err)
	require.NoError(t, first.Save(t.Context(), sampleRecord(t)))
	require.NoError(t, first.Close())

	second, err := Open(t.Context(), path, "a")
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	var count int
	require.NoError(t, second.db.QueryRowContext(t.Context(),
		"SELECT COUNT(*) FROM "+migrationTable).Scan(&count))
	assert.Equal(t, 1, count)

	rec, err := second.Load(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestLoadEmptySlot(t *testing.T) {
	store := openTempStore(t, "default")

	rec, err := store.Load(t.Context())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTempStore(t, "default")
	rec := sampleRecord(t)

	require.NoError(t, store.Save(t.Context(), rec))

	got, err := store.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestSaveUpsertsSlot(t *testing.T) {
	store := openTempStore(t, "default")

	rec := sampleRecord(t)
	require.NoError(t, store.Save(t.Context(), rec))

	rec.Inventory = nil
	rec.SavedAt = rec.SavedAt.Add(time.Minute)
	require.NoError(t, store.Save(t.Context(), rec))

	got, err := store.Load(t.Context())
	require.NoError(t, err)
	assert.Empty(t, got.Inventory)
	assert.True(t, rec.SavedAt.Equal(got.SavedAt))

	var rows int
	require.NoError(t, store.db.QueryRowContext(t.Context(),
		"SELECT COUNT(*) FROM world_saves").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSlotsAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	alpha, err := Open(t.Context(), path, "alpha")
	require.NoError(t, err)
	defer func() { _ = alpha.Close() }()
	beta, err := Open(t.Context(), path, "beta")
	require.NoError(t, err)
	defer func() { _ = beta.Close() }()

	require.NoError(t, alpha.Save(t.Context(), sampleRecord(t)))

	rec, err := beta.Load(t.Context())
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, beta.Save(t.Context(), sampleRecord(t)))
	require.NoError(t, alpha.Clear(t.Context()))

	rec, err = alpha.Load(t.Context())
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = beta.Load(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestLoadCorruptPayload(t *testing.T) {
	store := openTempStore(t, "default")
	_, err := store.db.ExecContext(t.Context(),
		"INSERT INTO world_saves (slot, version, payload, saved_at) VALUES (?, ?, ?, ?)",
		"default", 1, "{broken", 0)
	require.NoError(t, err)

	_, err = store.Load(t.Context())
	require.ErrorIs(t, err, domain.ErrSaveCorrupt)
}

func TestLoadFillsSavedAtFromColumn(t *testing.T) {
	store := openTempStore(t, "default")
	_, err := store.db.ExecContext(t.Context(),
		"INSERT INTO world_saves (slot, version, payload, saved_at) VALUES (?, ?, ?, ?)",
		"default", 1, `{"version":1}`, int64(1700000000000))
	require.NoError(t, err)

	rec, err := store.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, fromMillis(1700000000000), rec.SavedAt)
}

func TestCanceledContext(t *testing.T) {
	store := openTempStore(t, "default")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Save(ctx, sampleRecord(t)), context.Canceled)
	require.ErrorIs(t, store.Clear(ctx), context.Canceled)
}

func TestCloseNilStore(t *testing.T) {
	var store *Store
	require.NoError(t, store.Close())
}

func TestExtractUp(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE t (x);", want: "CREATE TABLE t (x);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE t (x);", want: "\nCREATE TABLE t (x);"},
		{
			name:    "up and down",
			content: "-- +migrate Up\nCREATE TABLE t (x);\n-- +migrate Down\nDROP TABLE t;",
			want:    "\nCREATE TABLE t (x);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUp(tt.content))
		})
	}
}
