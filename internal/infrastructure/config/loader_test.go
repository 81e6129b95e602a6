package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory into a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func newLoadedManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	mgr := newLoadedManager(t)

	path := filepath.Join(root, "config", "remotenav", "config.toml")
	assert.Equal(t, path, mgr.GetConfigFile())
	assert.FileExists(t, path)

	cfg := mgr.Get()
	assert.Equal(t, 10.0, cfg.Navigation.AlignTolerance)
	assert.Equal(t, 100, cfg.Keyboard.NavDelayMs)
	assert.Equal(t, 0.4, cfg.Scroll.ComfortLine)
	assert.Equal(t, filepath.Join(root, "data", "remotenav", "remotenav.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", "remotenav", "logs"), cfg.Logging.LogDir)
}

func TestManager_LoadUserFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "remotenav")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[navigation]
loop = true
cross_axis_weight = 2.5

[gamepad]
deadzone = 0.3
`), 0o644))

	cfg := newLoadedManager(t).Get()

	assert.True(t, cfg.Navigation.Loop)
	assert.Equal(t, 2.5, cfg.Navigation.CrossAxisWeight)
	assert.Equal(t, 0.3, cfg.Gamepad.Deadzone)
	assert.Equal(t, 150, cfg.Gamepad.NavDelayMs, "unset keys keep defaults")
}

func TestManager_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("REMOTENAV_LOG_LEVEL", "debug")
	t.Setenv("REMOTENAV_HINT_SHOW_ONCE", "true")

	cfg := newLoadedManager(t).Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Hint.ShowOnce)
}

func TestManager_LoadRejectsInvalid(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "remotenav")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[gamepad]
deadzone = 1.5

[pointer]
moves_to_exit = 0
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gamepad.deadzone")
	assert.Contains(t, err.Error(), "pointer.moves_to_exit")
}

func TestManager_Save(t *testing.T) {
	isolateXDG(t)
	mgr := newLoadedManager(t)

	cfg := mgr.Get()
	cfg.Navigation.Loop = true
	require.NoError(t, mgr.Save(cfg))
	assert.True(t, mgr.Get().Navigation.Loop)

	reloaded := newLoadedManager(t).Get()
	assert.True(t, reloaded.Navigation.Loop)

	cfg.Hint.DurationMs = -1
	assert.Error(t, mgr.Save(cfg))
	assert.Error(t, mgr.Save(nil))
}

func TestManager_WatchReloads(t *testing.T) {
	isolateXDG(t)
	mgr := newLoadedManager(t)
	require.NoError(t, mgr.Watch())

	var mu sync.Mutex
	var got *Config
	mgr.OnConfigChange(func(cfg *Config) {
		mu.Lock()
		defer mu.Unlock()
		got = cfg
	})

	updated := mgr.Get()
	updated.Navigation.AlignmentBonus = 42
	require.NoError(t, WriteConfigOrdered(updated, mgr.GetConfigFile()))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil && got.Navigation.AlignmentBonus == 42
	}, 3*time.Second, 20*time.Millisecond)
}
