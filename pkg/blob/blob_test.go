package blob

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(context.Background(), "engram_data", []byte(`[{"id":"1"}]`)))
		got, err := store.Get(context.Background(), "engram_data")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":"1"}]`), got)
	})

	t.Run("absent key yields nil without error", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		got, err := store.Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("overwrite replaces value", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(context.Background(), "k", []byte("one")))
		require.NoError(t, store.Set(context.Background(), "k", []byte("two")))
		got, err := store.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), got)
	})

	t.Run("keys are sanitized into file names", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Set(context.Background(), "a/b:c", []byte("v")))
		assert.Equal(t, filepath.Join(dir, "a_b_c.json"), store.Path("a/b:c"))
		_, statErr := os.Stat(store.Path("a/b:c"))
		assert.NoError(t, statErr)
	})

	t.Run("empty dir rejected", func(t *testing.T) {
		_, err := NewFileStore("")
		assert.Error(t, err)
	})
}

func TestSQLiteStore(t *testing.T) {
	t.Run("roundtrip and upsert", func(t *testing.T) {
		store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "blobs.db"))
		require.NoError(t, err)
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "engram_data", []byte("first")))
		require.NoError(t, store.Set(ctx, "engram_data", []byte("second")))

		got, err := store.Get(ctx, "engram_data")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)
	})

	t.Run("absent key yields nil without error", func(t *testing.T) {
		store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "blobs.db"))
		require.NoError(t, err)
		defer store.Close()

		got, err := store.Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := NewSQLiteStore("")
		assert.Error(t, err)
	})
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	var fired atomic.Int32
	w, err := NewWatcher(zerolog.Nop(), store.Path("engram_data"), func() {
		fired.Add(1)
	})
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, store.Set(context.Background(), "engram_data", []byte("[]")))

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond)
}
