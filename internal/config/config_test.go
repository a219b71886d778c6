package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/mmd-go/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, types.DefaultStylesheet, cfg.Render.Stylesheet)
	assert.Equal(t, "mmd", cfg.Render.Title)
	assert.False(t, cfg.Render.Highlight)
	assert.Equal(t, "github", cfg.Render.Style)
	assert.False(t, cfg.Render.Strict)
	assert.NotEmpty(t, cfg.Open.Command)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mmd.yaml")
	content := `render:
  title: Handbook
  highlight: true
  style: monokai
open:
  command: firefox
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Handbook", cfg.Render.Title)
	assert.True(t, cfg.Render.Highlight)
	assert.Equal(t, "monokai", cfg.Render.Style)
	assert.Equal(t, types.DefaultStylesheet, cfg.Render.Stylesheet, "unset keys keep defaults")
	assert.Equal(t, "firefox", cfg.Open.Command)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())

	render := cfg.RenderOptions()
	assert.Equal(t, "Handbook", render.PageTitle)
	assert.Equal(t, "monokai", render.HighlightStyle)
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MMD_RENDER_TITLE", "From Env")
	t.Setenv("MMD_RENDER_STRICT", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Render.Title)
	assert.True(t, cfg.Render.Strict)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"missing stylesheet", func(c *Config) { c.Render.Stylesheet = "" }, "render.stylesheet is required"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// chdir switches the working directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
