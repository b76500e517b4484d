// Package config loads runtime knobs from a YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/render"
)

// DefaultPath is the config file read when --config is not given
const DefaultPath = "hero-field.yaml"

// Environment overrides
const (
	EnvSeed  = "HERO_FIELD_SEED"
	EnvFPS   = "HERO_FIELD_FPS"
	EnvSound = "HERO_FIELD_SOUND"
	EnvDebug = "HERO_FIELD_DEBUG"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds runtime settings; page copy and tuning constants live in parameter
type Config struct {
	// FPS is the target frame rate of the interactive page
	FPS int `yaml:"fps"`
	// Seed fixes particle scatter; 0 seeds from the clock
	Seed uint64 `yaml:"seed"`
	// Sound enables the headline chime
	Sound bool `yaml:"sound"`
	// Volume is the linear chime gain (0-1)
	Volume float64 `yaml:"volume"`
	// ColorMode is "truecolor" or "256"
	ColorMode string `yaml:"color_mode"`
	// Debug enables the file logger
	Debug bool `yaml:"debug"`

	Export ExportConfig `yaml:"export"`
}

// ExportConfig configures headless rendering of the hero
type ExportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// FPS is the synthetic clock rate; also sets GIF frame delay
	FPS int `yaml:"fps"`
	// Frames to render; 0 renders until the script settles
	Frames int `yaml:"frames"`
	// Output is the GIF path; empty skips the GIF
	Output string `yaml:"output"`
	// FrameDir receives numbered PNG frames; empty skips them
	FrameDir string `yaml:"frame_dir"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		FPS:       parameter.DefaultFPS,
		Volume:    parameter.ChimeVolume,
		ColorMode: "truecolor",
		Export: ExportConfig{
			Width:  960,
			Height: 320,
			FPS:    30,
			Output: "hero.gif",
		},
	}
}

// Load reads path over the defaults; a missing file yields defaults
// Environment overrides apply in both cases
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvFPS, v, err)
		}
		c.FPS = fps
	}
	if v := os.Getenv(EnvSound); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSound, v, err)
		}
		c.Sound = on
	}
	if v := os.Getenv(EnvDebug); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvDebug, v, err)
		}
		c.Debug = on
	}
	return nil
}

// Validate checks ranges; every error wraps ErrInvalid
func (c *Config) Validate() error {
	var problems []string
	if c.FPS < 1 || c.FPS > parameter.MaxFPS {
		problems = append(problems, fmt.Sprintf("fps %d outside [1, %d]", c.FPS, parameter.MaxFPS))
	}
	if c.Volume < 0 || c.Volume > 1 {
		problems = append(problems, fmt.Sprintf("volume %g outside [0, 1]", c.Volume))
	}
	if _, ok := render.ParseColorMode(c.ColorMode); !ok {
		problems = append(problems, fmt.Sprintf("color_mode %q (valid: truecolor, 256)", c.ColorMode))
	}
	e := c.Export
	if e.Width <= 0 || e.Height <= 0 {
		problems = append(problems, fmt.Sprintf("export size %dx%d must be positive", e.Width, e.Height))
	}
	if e.FPS < 1 || e.FPS > parameter.MaxExportFPS {
		problems = append(problems, fmt.Sprintf("export fps %d outside [1, %d]", e.FPS, parameter.MaxExportFPS))
	}
	if e.Frames < 0 {
		problems = append(problems, fmt.Sprintf("export frames %d is negative", e.Frames))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Colors returns the parsed color mode, truecolor when unrecognized
func (c *Config) Colors() render.ColorMode {
	m, _ := render.ParseColorMode(c.ColorMode)
	return m
}
