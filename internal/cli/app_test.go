package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig points the app at an isolated data directory so commands
// never touch the real home directory.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "engram.json")
	content := fmt.Sprintf(`{
		"data_dir": %q,
		"storage": {"backend": "file", "path": %q},
		"logging": {"level": "error", "file": %q},
		"janitor": {"enabled": false},
		"watcher": {"enabled": false}
	}`, dir, filepath.Join(dir, "blobs"), filepath.Join(dir, "engram.log"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewApp(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()
	cfgFile = writeTestConfig(t)

	a, err := newApp(false)
	require.NoError(t, err)
	defer a.close()

	assert.NotNil(t, a.store)
	assert.NotNil(t, a.blob)
	assert.Equal(t, "file", a.cfg.Storage.Backend)
}

func TestNewAppSQLite(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()

	dir := t.TempDir()
	path := filepath.Join(dir, "engram.json")
	content := fmt.Sprintf(`{
		"data_dir": %q,
		"storage": {"backend": "sqlite", "path": %q},
		"logging": {"level": "error", "file": %q}
	}`, dir, filepath.Join(dir, "engram.db"), filepath.Join(dir, "engram.log"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfgFile = path

	a, err := newApp(false)
	require.NoError(t, err)
	defer a.close()

	rec := a.store.Save(context.Background(), "a memory persisted through the sqlite backend", nil)
	assert.NotNil(t, rec)
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()

	dir := t.TempDir()
	path := filepath.Join(dir, "engram.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage": {"backend": "redis"}}`), 0644))
	cfgFile = path

	_, err := newApp(false)
	assert.Error(t, err)
}

func TestSaveQueryThroughApp(t *testing.T) {
	orig := cfgFile
	defer func() { cfgFile = orig }()
	cfgFile = writeTestConfig(t)

	a, err := newApp(false)
	require.NoError(t, err)

	ctx := context.Background()
	rec := a.store.Save(ctx, "the deployment pipeline uses staged kubernetes rollouts", nil)
	require.NotNil(t, rec)
	require.NotNil(t, a.store.Save(ctx, "gardening tulips need watering twice weekly", map[string]any{"source": "other.example.com"}))
	a.close()

	// A fresh app over the same config sees the persisted collection.
	b, err := newApp(false)
	require.NoError(t, err)
	defer b.close()

	results := b.store.Query(ctx, "kubernetes deployment", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, rec.ID, results[0].Record.ID)
}
