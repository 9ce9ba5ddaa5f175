package filestore

import (
	"context"
	"testing"

	"threadz/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	t.Run("missing key returns ErrKeyNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "urbanthreadz-cart", []byte(`{"items":[]}`)))

		got, err := store.Get(ctx, "urbanthreadz-cart")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"items":[]}`), got)
	})

	t.Run("delete removes key", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "urbanthreadz-user", []byte(`{}`)))
		require.NoError(t, store.Delete(ctx, "urbanthreadz-user"))

		_, err := store.Get(ctx, "urbanthreadz-user")
		assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	})

	t.Run("delete of missing key is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-set"))
	})
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "cart", []byte(`persisted`)))

	second, err := New(dir)
	require.NoError(t, err)

	got, err := second.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`persisted`), got)
}

func TestStore_EscapesUnsafeKeys(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "../escape/attempt", []byte(`x`)))

	got, err := store.Get(ctx, "../escape/attempt")
	require.NoError(t, err)
	assert.Equal(t, []byte(`x`), got)
}

func TestNew_RequiresDir(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
