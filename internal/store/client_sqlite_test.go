package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

func newTestKV(t *testing.T) KeyValueStore {
	t.Helper()
	kv, err := NewKVSQLiteStore(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	return kv
}

func TestKVSQLiteStore_GetMissingKey(t *testing.T) {
	kv := newTestKV(t)

	_, err := kv.Get(context.Background(), "cachedData")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVSQLiteStore_SetThenGet(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "cachedData", `[{"id":"1"}]`))

	got, err := kv.Get(ctx, "cachedData")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got)
}

func TestKVSQLiteStore_SetOverwrites(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "first"))
	require.NoError(t, kv.Set(ctx, "k", "second"))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestKVSQLiteStore_Remove(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "pendingActions", "[]"))
	require.NoError(t, kv.Remove(ctx, "pendingActions"))

	_, err := kv.Get(ctx, "pendingActions")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVSQLiteStore_RemoveMissingKeyIsNoop(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Remove(context.Background(), "never-set"))
}

func TestKVSQLiteStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.db")

	kv, err := NewKVSQLiteStore(context.Background(), path, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "k", "v"))

	// повторное открытие того же файла видит записанное значение
	reopened, err := NewKVSQLiteStore(ctx, path, logger.Nop())
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
