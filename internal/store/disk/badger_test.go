package disk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-booking-cache/internal/config"
)

func newInMemoryStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewBadgerStore(&config.BadgerConfig{InMemory: true}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBadgerStore_SetAndGet(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "@booking_cache", `{"shipReference":"ABC"}`))

	value, found, err := store.Get(ctx, "@booking_cache")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"shipReference":"ABC"}`, value)
}

func TestBadgerStore_Get_NotFound(t *testing.T) {
	store := newInMemoryStore(t)

	value, found, err := store.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestBadgerStore_RemoveIsIdempotent(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", "value"))
	require.NoError(t, store.Remove(ctx, "key"))
	require.NoError(t, store.Remove(ctx, "key"))

	_, found, err := store.Get(ctx, "key")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestBadgerStore_Clear(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Clear(ctx))

	for _, key := range []string{"a", "b"} {
		_, found, err := store.Get(ctx, key)
		assert.NoError(t, err)
		assert.False(t, found)
	}
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.BadgerConfig{Path: dir, SyncWrites: true}
	ctx := context.Background()

	store, err := NewBadgerStore(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "@booking_cache", "persisted"))
	require.NoError(t, store.Close())

	reopened, err := NewBadgerStore(cfg, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, "@booking_cache")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", value)
}

func TestBadgerStore_CanceledContext(t *testing.T) {
	store := newInMemoryStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "key", "value"), context.Canceled)
	_, _, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, context.Canceled)
}
