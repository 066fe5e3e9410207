package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/feed-glutt/internal/assets"
	"github.com/vovakirdan/feed-glutt/internal/audio"
	"github.com/vovakirdan/feed-glutt/internal/core"
	"github.com/vovakirdan/feed-glutt/internal/registry"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	colBlack      = color.RGBA{A: 255}
	colWhite      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colButton     = color.RGBA{G: 255, A: 255}
	colButtonOver = color.RGBA{R: 255, A: 255}
	colShade      = color.RGBA{A: 160}
)

// app implements ebiten.Game around a registry.Game.
type app struct {
	game     registry.Game
	env      registry.Env
	logger   *log.Logger
	audio    audio.Player
	controls Controls

	sprites map[string]*ebiten.Image
	victory []*ebiten.Image
	labels  map[string]*ebiten.Image // Rendered debug text, keyed by string

	phase core.Phase
}

func newApp(game registry.Game, env registry.Env, cat *assets.Catalog) *app {
	a := &app{
		game:    game,
		env:     env,
		logger:  env.Logger,
		audio:   env.Audio,
		sprites: make(map[string]*ebiten.Image),
		labels:  make(map[string]*ebiten.Image),
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	if a.audio == nil {
		a.audio = audio.Nop{}
	}

	for _, key := range cat.Keys() {
		img, _ := cat.Sprite(key)
		a.sprites[key] = ebiten.NewImageFromImage(img)
	}
	for i := range cat.VictoryCount() {
		a.victory = append(a.victory, ebiten.NewImageFromImage(cat.Victory(i)))
	}

	a.phase = game.State().Phase
	return a
}

func readButtons() Buttons {
	x, y := ebiten.CursorPosition()
	return Buttons{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Start:     ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyR),
		Pause:     ebiten.IsKeyPressed(ebiten.KeyP),
		Quit:      ebiten.IsKeyPressed(ebiten.KeyEscape),
		CursorX:   x,
		CursorY:   y,
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Update runs one simulation tick. ebiten calls it at the configured TPS.
func (a *app) Update() error {
	frame := a.controls.Frame(readButtons())
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := a.game.Step(frame)

	if result.State.Phase != a.phase {
		a.logger.Info("phase changed",
			"from", a.phase, "to", result.State.Phase,
			"score", result.State.Score, "hunger", result.State.Hunger)
		a.phase = result.State.Phase
	}
	a.audio.HandleEvents(result.Events)

	if result.Has(core.EventMint) && a.env.Opener != nil {
		opener, url, logger := a.env.Opener, a.env.Config.Mint.URL, a.logger
		go func() {
			if err := opener.Open(url); err != nil {
				logger.Warn("mint open failed", "url", url, "error", err)
				return
			}
			logger.Info("mint opened", "url", url)
		}()
	}
	return nil
}

// Draw renders the scene snapshot taken after the last tick.
func (a *app) Draw(screen *ebiten.Image) {
	scene := a.game.Scene()
	screen.Fill(colBlack)

	switch scene.State.Phase {
	case core.PhaseNotStarted:
		a.drawSprite(screen, assets.KeyStartBackground, 0, 0)
		a.drawText(screen, "Feed GLUTT!", 100, 4)
		a.drawText(screen, "Press Enter to Start", scene.WorldH/2, 3)

	case core.PhasePlaying:
		a.drawSprite(screen, assets.KeyGameBackground, 0, 0)
		a.drawSprite(screen, assets.KeyPlayer, scene.Player.X, scene.Player.Y)
		for _, o := range scene.Objects {
			a.drawSprite(screen, o.ID, o.Rect.X, o.Rect.Y)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", scene.State.Score), 10, 10)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Hunger: %d%%", scene.State.Hunger), 10, 30)
		if scene.State.Paused {
			vector.DrawFilledRect(screen, 0, 0, float32(scene.WorldW), float32(scene.WorldH), colShade, false)
			a.drawText(screen, "PAUSED", scene.WorldH/2-glyphH*2, 4)
		}

	case core.PhaseWon:
		a.drawVictory(screen, scene)

	case core.PhaseLost:
		a.drawText(screen, "Game Over", scene.WorldH/2-50, 4)
		a.drawText(screen, fmt.Sprintf("Score: %d  -  Press Enter to restart", scene.State.Score), scene.WorldH/2+30, 2)
	}
}

func (a *app) drawVictory(screen *ebiten.Image, scene core.Scene) {
	if len(a.victory) > 0 {
		img := a.victory[scene.VictoryRoll%len(a.victory)]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(scene.WorldW/2-assets.VictorySize/2), 100)
		screen.DrawImage(img, op)
	}

	a.drawText(screen, "You Fed Glutt!", 30, 5)
	a.drawText(screen, "Claim Your Badge!", 510, 2)

	btn := scene.MintButton
	fill := colButton
	if scene.MintHover {
		fill = colButtonOver
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), fill, false)
	a.drawLabel(screen, "Mint Collectible", btn.X+10, btn.Y+10, 2, colBlack)
}

func (a *app) drawSprite(screen *ebiten.Image, key string, x, y int) {
	img, ok := a.sprites[key]
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

// drawText draws white text centered horizontally at row y.
func (a *app) drawText(screen *ebiten.Image, s string, y, scale int) {
	w := len(s) * glyphW * scale
	a.drawLabel(screen, s, (screen.Bounds().Dx()-w)/2, y, scale, colWhite)
}

// drawLabel draws debug-font text magnified by an integer scale.
func (a *app) drawLabel(screen *ebiten.Image, s string, x, y, scale int, c color.Color) {
	img, ok := a.labels[s]
	if !ok {
		img = ebiten.NewImage(len(s)*glyphW, glyphH)
		ebitenutil.DebugPrint(img, s)
		a.labels[s] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(img, op)
}

// Layout fixes the logical screen to the world size.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	scene := a.game.Scene()
	return scene.WorldW, scene.WorldH
}
