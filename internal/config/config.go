// Package config provides YAML-based configuration loading for Feed Glutt.
// Gameplay rules are fixed in the game package; this covers how the game
// runs: tick rate, frontend, assets, input, audio, the mint link and logging.
package config

import (
	"fmt"
	"strings"
)

// Frontend names.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Config is the full application configuration.
type Config struct {
	Runtime  RuntimeConfig `yaml:"runtime"`
	Frontend string        `yaml:"frontend"`
	Assets   AssetsConfig  `yaml:"assets"`
	Input    InputConfig   `yaml:"input"`
	Audio    AudioConfig   `yaml:"audio"`
	Mint     MintConfig    `yaml:"mint"`
	Log      LogConfig     `yaml:"log"`
}

// RuntimeConfig defines the simulation clock.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = time-based
}

// AssetsConfig points at the image tree used by the window frontend.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// InputConfig tunes keyboard handling in the terminal, which only reports
// key presses and repeats, never releases.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a direction stays held after its last key event
}

// AudioConfig controls the synthesized sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// MintConfig defines the victory screen link.
type MintConfig struct {
	URL string `yaml:"url"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = ~/.glutt/glutt.log for the terminal, stderr for the window
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Runtime.TickRate <= 0 || c.Runtime.TickRate > 240 {
		return fmt.Errorf("runtime.tick_rate must be in 1..240, got %d", c.Runtime.TickRate)
	}
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", c.Frontend, FrontendTerminal, FrontendWindow)
	}
	if c.Input.HoldMS <= 0 {
		return fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if strings.TrimSpace(c.Mint.URL) == "" {
		return fmt.Errorf("mint.url must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
