package out_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	storeadapter "taskflows/internal/modules/store/adapter/out"
	storeout "taskflows/internal/modules/store/port/out"
	"taskflows/internal/platform/clock"
	apperrors "taskflows/internal/platform/errors"
)

var savedAt = time.Date(2026, 4, 10, 8, 30, 0, 0, time.UTC)

func backends(t *testing.T) map[string]storeout.KeyValueStore {
	t.Helper()
	dir := t.TempDir()
	file, err := storeadapter.NewFileKeyValueStore(filepath.Join(dir, "file"))
	require.NoError(t, err)
	sqlite, err := storeadapter.NewSQLiteKeyValueStore(filepath.Join(dir, "db", "taskflows.db"), clock.Fixed{At: savedAt})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]storeout.KeyValueStore{
		"memory": storeadapter.NewMemoryKeyValueStore(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestKeyValueStoresRoundTripAndOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for name, kv := range backends(t) {
		_, err := kv.Load(ctx, "taskflows-data")
		require.ErrorIs(t, err, apperrors.ErrNotFound, name)

		require.NoError(t, kv.Save(ctx, "taskflows-data", []byte(`{"tasks":[]}`)), name)
		got, err := kv.Load(ctx, "taskflows-data")
		require.NoError(t, err, name)
		require.JSONEq(t, `{"tasks":[]}`, string(got), name)

		require.NoError(t, kv.Save(ctx, "taskflows-data", []byte(`{"goals":[]}`)), name)
		got, err = kv.Load(ctx, "taskflows-data")
		require.NoError(t, err, name)
		require.Equal(t, `{"goals":[]}`, string(got), name)

		_, err = kv.Load(ctx, "other-key")
		require.ErrorIs(t, err, apperrors.ErrNotFound, name)
	}
}

func TestFileKeyValueStoreLeavesNoTempFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	kv, err := storeadapter.NewFileKeyValueStore(dir)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, kv.Save(context.Background(), "taskflows-data", []byte(`{}`)))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "taskflows-data.json", entries[0].Name())
}

func TestFileKeyValueStoreKeepsSimilarKeysApart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := storeadapter.NewFileKeyValueStore(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Save(ctx, "Taskflows Data", []byte(`{"a":1}`)))
	require.NoError(t, kv.Save(ctx, "taskflows-data", []byte(`{"b":2}`)))
	require.NoError(t, kv.Save(ctx, "team/notes", []byte(`{"c":3}`)))

	got, err := kv.Load(ctx, "Taskflows Data")
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(got))
	got, err = kv.Load(ctx, "taskflows-data")
	require.NoError(t, err)
	require.Equal(t, `{"b":2}`, string(got))
	got, err = kv.Load(ctx, "team/notes")
	require.NoError(t, err)
	require.Equal(t, `{"c":3}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestSQLiteKeyValueStoreStampsClockTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "taskflows.db")
	kv, err := storeadapter.NewSQLiteKeyValueStore(path, clock.Fixed{At: savedAt})
	require.NoError(t, err)
	require.NoError(t, kv.Save(ctx, "taskflows-data", []byte(`{}`)))
	require.NoError(t, kv.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	var updatedAt string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT updated_at FROM kv WHERE key = ?`, "taskflows-data").Scan(&updatedAt))
	require.Equal(t, "2026-04-10T08:30:00Z", updatedAt)
}

func TestMemoryKeyValueStoreCopiesValues(t *testing.T) {
	t.Parallel()
	kv := storeadapter.NewMemoryKeyValueStore()
	value := []byte(`{"a":1}`)
	require.NoError(t, kv.Save(context.Background(), "k", value))
	value[0] = 'X'
	got, err := kv.Load(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(got))
}

func TestNewFileKeyValueStoreRequiresDir(t *testing.T) {
	t.Parallel()
	_, err := storeadapter.NewFileKeyValueStore("")
	require.Error(t, err)
}
