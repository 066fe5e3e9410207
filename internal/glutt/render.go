package glutt

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

// Visual characters for terminal rendering
const (
	FoodChar   = '▓'
	GroundChar = '▁'
	BarFull    = '█'
	BarEmpty   = '░'
)

// spriteColors gives each food a stable terminal color.
var spriteColors = map[string]core.Color{
	"object1": core.ColorWhite,
	"object2": core.ColorBrightYellow,
	"object3": core.ColorBrightMagenta,
	"object4": core.ColorBrightGreen,
	"object5": core.ColorGreen,
	"object6": core.ColorCyan,
	"object7": core.ColorBrightRed,
}

// gluttFace is sampled into the player box column by column.
var gluttFace = []string{
	"  ▄▄▄▄▄▄▄▄  ",
	" █ ◉    ◉ █ ",
	" █  ▀▀▀▀  █ ",
	" █ ╲____╱ █ ",
	"  ▀▀▀▀▀▀▀▀  ",
}

// Render draws the current scene into dst, scaling the 800x600 world to
// the terminal grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.sim.State().Phase {
	case core.PhaseNotStarted:
		g.drawStartMenu(dst)
	case core.PhasePlaying:
		g.drawPlaying(dst)
		if g.paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	case core.PhaseWon:
		g.drawVictory(dst)
	case core.PhaseLost:
		st := g.sim.State()
		drawCenteredMessage(dst, "Game Over",
			fmt.Sprintf("Score: %d  |  Press Enter to restart", st.Score))
	}
}

func (g *Game) drawStartMenu(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/6, "Feed GLUTT!", core.ColorBrightYellow)
	dst.DrawTextCentered(h/2, "Press Enter to Start", core.ColorBrightWhite)

	var legend strings.Builder
	for i, e := range spawnTable {
		if i > 0 {
			legend.WriteString("  ")
		}
		fmt.Fprintf(&legend, "%+d", e.Value)
	}
	dst.DrawTextCentered(h/2+2, "Food: "+legend.String(), core.ColorGray)
	dst.DrawTextCentered(h/2+3, "Fill hunger to 100% with 500 points. Don't starve.", core.ColorGray)
}

func (g *Game) drawPlaying(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	dst.DrawHLine(0, h-1, w, GroundChar, core.ColorGray)

	for _, o := range g.sim.Objects() {
		r := g.toScreen(o.Rect, dst)
		color, ok := spriteColors[o.Sprite]
		if !ok {
			color = core.ColorWhite
		}
		dst.DrawRect(r, FoodChar, color)
		label := fmt.Sprintf("%+d", o.Value)
		if len(label) <= r.W {
			dst.DrawTextColored(r.X+(r.W-len(label))/2, r.Y, label, color)
		}
	}

	g.drawPlayer(dst, g.toScreen(g.sim.Player(), dst))
	g.drawHUD(dst)
}

func (g *Game) drawPlayer(dst *core.Screen, r core.Rect) {
	if r.W < 3 || r.H < 3 {
		dst.DrawRect(r, '●', core.ColorOrange)
		return
	}
	dst.DrawRect(r, ' ', core.ColorOrange)
	dst.DrawBox(r, core.ColorOrange)

	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	for row := 0; row < inner.H && row < len(gluttFace); row++ {
		line := []rune(gluttFace[row])
		for col := 0; col < inner.W; col++ {
			src := col * len(line) / inner.W
			dst.SetColored(inner.X+col, inner.Y+row, line[src], core.ColorOrange)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.sim.State()
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)

	label := fmt.Sprintf("Hunger: %d%% ", st.Hunger)
	dst.DrawTextColored(1, 1, label, core.ColorBrightWhite)

	const barW = 20
	filled := st.Hunger * barW / MaxHunger
	color := core.ColorGreen
	if st.Hunger <= 20 {
		color = core.ColorRed
	}
	x := 1 + len(label)
	dst.DrawHLine(x, 1, filled, BarFull, color)
	dst.DrawHLine(x+filled, 1, barW-filled, BarEmpty, core.ColorGray)
}

func (g *Game) drawVictory(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(1, "You Fed Glutt!", core.ColorBrightYellow)

	badges := []string{"★ GLUTT GOLD ★", "✦ GLUTT GRAND ✦", "♛ GLUTT ROYAL ♛"}
	badge := badges[g.victoryRoll%len(badges)]
	boxW := len([]rune(badge)) + 6
	box := core.NewRect((dst.Width()-boxW)/2, h/2-3, boxW, 5)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+2, badge, core.ColorBrightYellow)

	btn := g.toScreen(g.mint.Rect(), dst)
	dst.DrawTextCentered(btn.Y-1, "Claim Your Badge!", core.ColorBrightWhite)

	color := core.ColorGreen
	if g.mint.Hover(g.pointer) {
		color = core.ColorRed
	}
	dst.DrawRect(btn, ' ', color)
	dst.DrawBox(btn, color)
	text := "Mint Collectible"
	dst.DrawTextColored(btn.X+(btn.W-len(text))/2, btn.Y+btn.H/2, text, color)
}

// toScreen maps a world rectangle to terminal cells.
func (g *Game) toScreen(r core.Rect, dst *core.Screen) core.Rect {
	return r.Scale(WorldWidth, WorldHeight, dst.Width(), dst.Height())
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
