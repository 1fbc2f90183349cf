package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	SetPath("")
	t.Cleanup(func() { SetPath("") })
	return dir
}

func TestGetConfigPath(t *testing.T) {
	dir := useTempConfig(t)
	assert.Equal(t, filepath.Join(dir, "awsctl", "config.yaml"), GetConfigPath())

	override := filepath.Join(t.TempDir(), "custom.yaml")
	SetPath(override)
	assert.Equal(t, override, GetConfigPath())
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	useTempConfig(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Empty(t, cfg.CurrentContext)
	assert.NotNil(t, cfg.Contexts)
	assert.Equal(t, "table", cfg.Defaults.Output)
	assert.Equal(t, "info", cfg.Defaults.LogLevel)
}

func TestLoadConfig_ParsesFile(t *testing.T) {
	dir := useTempConfig(t)
	path := filepath.Join(dir, "awsctl", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`current_context: prod
contexts:
  prod:
    profile: prod-sso
    region: eu-west-1
  local:
    region: us-east-1
    endpoint_url: http://localhost:4566
defaults:
  output: json
`), 0o600))

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.CurrentContext)
	assert.Equal(t, &Context{Profile: "prod-sso", Region: "eu-west-1"}, cfg.Contexts["prod"])
	assert.Equal(t, "http://localhost:4566", cfg.Contexts["local"].EndpointURL)
	assert.Equal(t, "json", cfg.Defaults.Output)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	SetPath(filepath.Join(t.TempDir(), "broken.yaml"))
	t.Cleanup(func() { SetPath("") })
	require.NoError(t, os.WriteFile(GetConfigPath(), []byte("contexts: [unterminated"), 0o600))

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	useTempConfig(t)
	cfg := defaultConfig()
	cfg.CurrentContext = "dev"
	cfg.Contexts["dev"] = &Context{Profile: "dev", Region: "ap-southeast-1"}

	require.NoError(t, SaveConfig(cfg))
	loaded, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	info, err := os.Stat(GetConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
