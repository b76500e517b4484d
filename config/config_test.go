package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hero-field/render"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero-field.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fps: 30
seed: 42
color_mode: "256"
export:
  frames: 90
  frame_dir: frames
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, render.Color256, cfg.Colors())
	assert.Equal(t, 90, cfg.Export.Frames)
	assert.Equal(t, "frames", cfg.Export.FrameDir)
	assert.Equal(t, 960, cfg.Export.Width, "unset keys keep defaults")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps: [1, 2"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvFPS, "24")
	t.Setenv(EnvSound, "true")
	t.Setenv(EnvDebug, "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 24, cfg.FPS)
	assert.True(t, cfg.Sound)
	assert.True(t, cfg.Debug)
}

func TestEnvOverrideRejectsGarbage(t *testing.T) {
	t.Setenv(EnvFPS, "fast")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"fps above cap", func(c *Config) { c.FPS = 1000 }},
		{"loud volume", func(c *Config) { c.Volume = 1.5 }},
		{"unknown color mode", func(c *Config) { c.ColorMode = "16" }},
		{"empty export", func(c *Config) { c.Export.Width = 0 }},
		{"export fps", func(c *Config) { c.Export.FPS = 0 }},
		{"export fps above gif pacing", func(c *Config) { c.Export.FPS = 60 }},
		{"negative frames", func(c *Config) { c.Export.Frames = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hero-field.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 99
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
