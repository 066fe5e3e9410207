package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the home directory and working directory at empty temp dirs.
func isolate(t *testing.T) (home string) {
	t.Helper()
	home = t.TempDir()
	old := userHomeDir
	userHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { userHomeDir = old })
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML and DefaultConfig() disagree:\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)

	writeFile(t, localConfigPath, "runtime:\n  tick_rate: 30\n")
	cfg, source, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if source != localConfigPath || cfg.Runtime.TickRate != 30 {
		t.Errorf("local config not used: source=%q tick_rate=%d", source, cfg.Runtime.TickRate)
	}

	userPath := filepath.Join(home, ".glutt", "config.yaml")
	writeFile(t, userPath, "runtime:\n  tick_rate: 45\n")
	cfg, source, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if source != userPath || cfg.Runtime.TickRate != 45 {
		t.Errorf("user config should win over local: source=%q tick_rate=%d", source, cfg.Runtime.TickRate)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "frontend: window\n")
	cfg, source, err = Load(custom)
	if err != nil {
		t.Fatal(err)
	}
	if source != custom || cfg.Frontend != FrontendWindow {
		t.Errorf("custom config should win: source=%q frontend=%q", source, cfg.Frontend)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Runtime.TickRate != 60 || cfg.Mint.URL == "" {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadBrokenUserConfigFallsThrough(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".glutt", "config.yaml"), "runtime: [not a map\n")

	_, source, err := Load("")
	if err != nil {
		t.Fatalf("broken user config should be skipped, got %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected embedded fallback", source)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing custom config: err = %v, expected ErrNotExist", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "audio: {volume: loud}\n")
	_, _, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("bad custom config: err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"zero tick rate", func(c *Config) { c.Runtime.TickRate = 0 }, "tick_rate"},
		{"unknown frontend", func(c *Config) { c.Frontend = "vr" }, "frontend"},
		{"negative hold", func(c *Config) { c.Input.HoldMS = -1 }, "hold_ms"},
		{"zero hold", func(c *Config) { c.Input.HoldMS = 0 }, "hold_ms"},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }, "volume"},
		{"no sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample_rate"},
		{"empty url", func(c *Config) { c.Mint.URL = "  " }, "mint.url"},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, "log level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.errSub)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Log.Level = "DEBUG"
	if err := cfg.Validate(); err != nil {
		t.Errorf("level should be case-insensitive: %v", err)
	}
}
