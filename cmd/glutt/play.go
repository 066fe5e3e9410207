package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/feed-glutt/internal/audio"
	"github.com/vovakirdan/feed-glutt/internal/config"
	"github.com/vovakirdan/feed-glutt/internal/core"
	"github.com/vovakirdan/feed-glutt/internal/glutt"
	"github.com/vovakirdan/feed-glutt/internal/mint"
	"github.com/vovakirdan/feed-glutt/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Feed GLUTT!",
	Long: `Start the game with the configured frontend.

The terminal frontend needs no assets. The window frontend loads images
from the asset directory and refuses to start if any are missing.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config (%s): %w", source, err)
	}

	frontend, err := registry.Create(cfg.Frontend)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := runtimeConfig(cfg)
	logger.Info("starting",
		"frontend", cfg.Frontend, "config", source,
		"tick_rate", rc.TickRate, "seed", rc.Seed)

	player := newAudio(cfg, logger)
	defer player.Close()

	env := registry.Env{
		Runtime: rc,
		Config:  cfg,
		Logger:  logger,
		Audio:   player,
		Opener:  mint.NewBrowserOpener(cfg.Frontend == config.FrontendTerminal),
	}

	if err := frontend.Run(glutt.New(), env); err != nil {
		logger.Error("frontend failed", "error", err)
		return err
	}
	return nil
}

// applyFlags overrides file values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("frontend") {
		cfg.Frontend = flagFrontend
	}
	if flags.Changed("assets") {
		cfg.Assets.Dir = flagAssets
	}
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Runtime.Seed = flagSeed
	}
	if flags.Changed("mute") && flagMute {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// runtimeConfig builds the game runtime settings. Seed 0 means random.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = cfg.Runtime.TickRate
	rc.Seed = cfg.Runtime.Seed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}

// newAudio starts the speaker, or returns a silent player when sound is
// disabled or no device is available.
func newAudio(cfg config.Config, logger *log.Logger) audio.Player {
	if !cfg.Audio.Enabled {
		return audio.Nop{}
	}
	p, err := audio.NewSpeakerPlayer(cfg.Audio.SampleRate, cfg.Audio.Volume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}
	}
	return p
}
