package config

import (
	_ "embed"

	"github.com/vovakirdan/feed-glutt/internal/mint"
)

//go:embed defaults/glutt.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/glutt.yaml.
func DefaultConfig() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate: 60,
			Seed:     0,
		},
		Frontend: FrontendTerminal,
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Mint: MintConfig{
			URL: mint.DefaultURL,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
