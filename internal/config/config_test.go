package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "All", cfg.State[KeyLastCategory])
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Gesture = "ctrl+;"
	cfg.Announce.Command = []string{"spd-say", "--wait"}
	cfg.State[KeyLastCategory] = "Animals & Nature"
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, path, svc.Path())
}

func TestLoadFillsDefaultsAndRepairsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "version = 1\ndebounce_ms = -5\nclipboard = \"carrier-pigeon\"\n[ui]\nlist_height = 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "ctrl+e", cfg.Gesture)
	assert.Equal(t, 0, cfg.DebounceMS)
	assert.Equal(t, ClipboardAuto, cfg.Clipboard)
	assert.Equal(t, 10, cfg.UISettings.ListHeight)
	assert.Equal(t, "All", cfg.State[KeyLastCategory])
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("gesture = [unterminated"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path)
	cfg, err := svc.Load()
	require.NoError(t, err)

	store := NewFileStore(svc, cfg)
	v, err := store.Get(KeyLastCategory, "All")
	require.NoError(t, err)
	assert.Equal(t, "All", v)

	require.NoError(t, store.Set(KeyLastCategory, "Flags"))

	reloaded, err := svc.Load()
	require.NoError(t, err)
	v, err = NewFileStore(svc, reloaded).Get(KeyLastCategory, "All")
	require.NoError(t, err)
	assert.Equal(t, "Flags", v)
}

func TestFileStoreWritesOnlyState(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))
	onDisk := DefaultConfig()
	onDisk.Gesture = "f2"
	require.NoError(t, svc.Save(onDisk))

	// settings changed for this run only
	cfg, err := svc.Load()
	require.NoError(t, err)
	cfg.UISettings.ExitOnClose = true
	cfg.Clipboard = ClipboardOSC52
	cfg.Dataset = "/tmp/x.json"
	cfg.Gesture = "ctrl+k"

	store := NewFileStore(svc, cfg)
	require.NoError(t, store.Set(KeyLastCategory, "Symbols"))

	v, err := store.Get(KeyLastCategory, "All")
	require.NoError(t, err)
	assert.Equal(t, "Symbols", v)

	reloaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "Symbols", reloaded.State[KeyLastCategory])
	assert.Equal(t, "f2", reloaded.Gesture)
	assert.False(t, reloaded.UISettings.ExitOnClose)
	assert.Equal(t, ClipboardAuto, reloaded.Clipboard)
	assert.Empty(t, reloaded.Dataset)
}

func TestFileStoreRejectsUnknownKeys(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))
	store := NewFileStore(svc, DefaultConfig())

	v, err := store.Get("nope", "fallback")
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.Equal(t, "fallback", v)
	assert.True(t, errors.Is(store.Set("nope", "x"), ErrUnknownKey))
}

func TestFileStoreReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	// the config directory would have to be created below a regular file
	svc := NewConfigService(filepath.Join(blocker, "config.toml"))
	store := NewFileStore(svc, DefaultConfig())
	require.Error(t, store.Set(KeyLastCategory, "Flags"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	v, err := store.Get(KeyLastCategory, "All")
	require.NoError(t, err)
	assert.Equal(t, "All", v)

	require.NoError(t, store.Set(KeyLastCategory, "Food"))
	v, _ = store.Get(KeyLastCategory, "All")
	assert.Equal(t, "Food", v)

	store.SetErr = errors.New("disk full")
	assert.Error(t, store.Set(KeyLastCategory, "x"))
}
