package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/feed-glutt/internal/assets"
	"github.com/vovakirdan/feed-glutt/internal/config"
	"github.com/vovakirdan/feed-glutt/internal/registry"
)

func init() {
	registry.Register(config.FrontendWindow, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend runs the game in an 800x600 desktop window.
type Frontend struct{}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return config.FrontendWindow
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Desktop window with image assets (requires --assets)"
}

// Run loads the asset catalog and blocks until the window closes.
func (Frontend) Run(game registry.Game, env registry.Env) error {
	cat, err := assets.Load(env.Config.Assets.Dir)
	if err != nil {
		return fmt.Errorf("window frontend: %w", err)
	}
	if env.Logger != nil {
		env.Logger.Info("assets loaded", "dir", cat.Root(), "sprites", len(cat.Keys()), "victory", cat.VictoryCount())
	}

	game.Reset(env.Runtime)
	a := newApp(game, env, cat)

	scene := game.Scene()
	ebiten.SetWindowSize(scene.WorldW, scene.WorldH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(env.Runtime.TickRate)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("window frontend: %w", err)
	}
	return nil
}
