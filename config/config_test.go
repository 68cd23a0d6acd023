package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avita.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1280.0, cfg.Viewport.Width)
	assert.Equal(t, "#root", cfg.Root)
	assert.True(t, cfg.InjectBaseStyles())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := write(t, `
viewport:
  width: 375
root: "#app"
base_styles: false
log_level: debug
pretty: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 375.0, cfg.Viewport.Width)
	assert.Equal(t, 800.0, cfg.Viewport.Height)
	assert.Equal(t, "#app", cfg.Root)
	assert.False(t, cfg.InjectBaseStyles())
	assert.True(t, cfg.Pretty)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(write(t, "viewport: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Viewport.Width = 0 }},
		{"blank root", func(c *Config) { c.Root = " " }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Root = "#main"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#main", loaded.Root)
}
