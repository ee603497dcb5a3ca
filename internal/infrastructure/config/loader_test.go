package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.InDelta(t, 0.5, mgr.viper.GetFloat64("layout.default_ratio"), 1e-9)
	assert.InDelta(t, 5.0, mgr.viper.GetFloat64("drag.threshold"), 1e-9)
	assert.InDelta(t, 0.3, mgr.viper.GetFloat64("drag.edge_band"), 1e-9)
	assert.Equal(t, 100, mgr.viper.GetInt("layout.history_limit"))
	assert.Equal(t, "console", mgr.viper.GetString("logging.format"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARNING "
	cfg.Logging.Format = ""
	cfg.Layout.File = "  /tmp/layout.yaml "

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/layout.yaml", cfg.Layout.File)
}

func TestManagerLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, schemaFileName))
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", appName, layoutName), cfg.Layout.File)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.InDelta(t, defaultEdgeBand, cfg.Drag.EdgeBand, 1e-9)
}

func TestManagerLoad_EnvOverride(t *testing.T) {
	isolateXDG(t)
	t.Setenv("DOCKYARD_DRAG_THRESHOLD", "12")
	t.Setenv("DOCKYARD_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 12.0, cfg.Drag.Threshold, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManagerLoad_RejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[drag]\nedge_band = 0.9\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drag.edge_band")
}

func TestManagerLoad_ExplicitFileMustExist(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(filepath.Join(root, "missing.toml"))

	require.Error(t, mgr.Load())
	assert.NoFileExists(t, filepath.Join(root, "config", appName, "config.toml"))
}

func TestManagerSave_RoundTrip(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Drag.Threshold = 9
	cfg.Layout.HistoryLimit = 25
	require.NoError(t, mgr.Save(cfg))
	assert.InDelta(t, 9.0, mgr.Get().Drag.Threshold, 1e-9)

	fresh, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, fresh.Load())
	assert.InDelta(t, 9.0, fresh.Get().Drag.Threshold, 1e-9)
	assert.Equal(t, 25, fresh.Get().Layout.HistoryLimit)
}

func TestManagerSave_RejectsInvalid(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.DefaultRatio = 2
	require.Error(t, mgr.Save(cfg))
	assert.Error(t, mgr.Save(nil))
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
}
