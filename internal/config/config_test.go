package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gjslink/cli/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "bundle.yaml", cfg.Manifest)
	assert.Empty(t, cfg.OutDir)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()
	assert.Equal(t, "bundle.yaml", cfg.Manifest)

	cfg = (&Config{Manifest: "app.yaml"}).WithDefaults()
	assert.Equal(t, "app.yaml", cfg.Manifest)
}

func TestLoaderReadsFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", `manifest: app.yaml
outDir: /tmp/out
namespaces:
  Gtk: "4.0"
log:
  timestamps: true
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "app.yaml", cfg.Manifest)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
	assert.Equal(t, map[string]string{"Gtk": "4.0"}, cfg.Namespaces)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bundle.yaml", cfg.Manifest)
}

func TestLoaderMalformedFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "manifest: [unclosed\n")

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "manifest: file.yaml\n")
	t.Setenv("GJSLINK_MANIFEST", "env.yaml")
	t.Setenv("GJSLINK_OUT_DIR", "/env/out")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.Manifest)
	assert.Equal(t, "/env/out", cfg.OutDir)
}

func TestGetConfigFileEnvPrecedence(t *testing.T) {
	t.Setenv("GJSLINK_CONFIG", "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestGetConfigFileDefault(t *testing.T) {
	t.Setenv("GJSLINK_CONFIG", "")

	path, err := GetConfigFile()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".gjslink", "config.yaml"), path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/x/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "config.yaml"), expanded)

	plain, err := ExpandPath("/abs/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/abs/config.yaml", plain)
}

func TestConfigFileExists(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "manifest: app.yaml\n")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}
