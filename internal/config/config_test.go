package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogLevel, EnvLogFile, EnvAddr, EnvHistoryRows} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadNoPath(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("log:\n  level: debug\ntui:\n  history_rows: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, 5, cfg.TUI.HistoryRows)
	// Unset keys keep their defaults.
	assert.Equal(t, Default().Server.Addr, cfg.Server.Addr)
}

func TestLoadClampsHistoryRows(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cases := []struct {
		yaml string
		want int
	}{
		{"tui:\n  history_rows: 50\n", 5},
		{"tui:\n  history_rows: -1\n", 0},
		{"tui:\n  history_rows: 0\n", 0},
	}
	for i, c := range cases {
		path := filepath.Join(dir, "config"+string(rune('a'+i))+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(c.yaml), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, c.want, cfg.TUI.HistoryRows, "config %q", c.yaml)
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: 0.0.0.0:1\n"), 0o644))
	t.Setenv(EnvAddr, "127.0.0.1:9999")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvHistoryRows, "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 1, cfg.TUI.HistoryRows)

	t.Setenv(EnvHistoryRows, "lots")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
