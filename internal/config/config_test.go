package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
extensions: [rx, rs]
log:
  verbosity: 2
  file: /tmp/rustx.log
cache:
  ttl: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"rx", "rs"}, cfg.Extensions)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "/tmp/rustx.log", cfg.Log.File)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Registry().Matches("lib.rs"))
	assert.False(t, cfg.Registry().Matches("lib.roo"))
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeFile(t, "log:\n  verbosity: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Defaults().Extensions, cfg.Extensions)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, Defaults().Cache.TTL, cfg.Cache.TTL)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeFile(t, "log:\n  verbosity: 1\n")
	t.Setenv("RUSTX_LOG_VERBOSITY", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Log.Verbosity)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "extensions: [rx\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	require.Error(t, WriteDefault(path), "existing file must not be overwritten")
}
