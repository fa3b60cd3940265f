// Package config loads the game and frontend settings.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"rsnake/game/types"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all settings.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Tick      TickConfig      `yaml:"tick"`
	Screen    ScreenConfig    `yaml:"screen"`
	Game      GameConfig      `yaml:"game"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig holds the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig holds the simulation cadence.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// ScreenConfig holds display settings for the window frontend.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	CellSize  int `yaml:"cell_size"` // upper bound; shrunk to fit the window
}

// GameConfig holds per-game settings.
type GameConfig struct {
	Seed           uint64 `yaml:"seed"` // 0 = time-based
	Autopilot      bool   `yaml:"autopilot"`
	StartDirection string `yaml:"start_direction"` // up, down, left or right
}

// HeadlessConfig holds settings for unattended autopilot runs.
type HeadlessConfig struct {
	Games    int `yaml:"games"`
	MaxSteps int `yaml:"max_steps"` // per game; 0 = unlimited
}

// TelemetryConfig holds output settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // empty = no CSV output
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the game cannot run with.
func (c *Config) Validate() error {
	if err := c.GridDims().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("config: tick.interval_ms must be positive, got %d", c.Tick.IntervalMS)
	}
	if _, err := types.ParseDirection(c.Game.StartDirection); err != nil {
		return fmt.Errorf("config: game.start_direction: %w", err)
	}
	if c.Headless.Games < 0 || c.Headless.MaxSteps < 0 {
		return fmt.Errorf("config: headless games and max_steps must not be negative")
	}
	return nil
}

// GridDims returns the grid as the game package expects it.
func (c *Config) GridDims() types.Grid {
	return types.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
}

// StartFacing returns the direction the snake faces before the first tick.
// Call it on a validated config only.
func (c *Config) StartFacing() types.Direction {
	d, err := types.ParseDirection(c.Game.StartDirection)
	if err != nil {
		return types.Right
	}
	return d
}

// TickInterval returns the delay between simulation steps.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
