// Package window runs the game in a desktop window with ebiten, drawing
// the image catalog at the native 800x600 resolution.
package window

import "github.com/vovakirdan/feed-glutt/internal/core"

// Buttons is the raw device state sampled once per tick.
type Buttons struct {
	Left, Right bool
	Start       bool // Enter or R held
	Pause       bool // P held
	Quit        bool // Escape held
	CursorX     int
	CursorY     int
	MouseDown   bool
}

// Controls turns raw button levels into an input frame. Start and Pause
// fire only on the tick their key goes down.
type Controls struct {
	start core.EdgeDetector
	pause core.EdgeDetector
}

// Frame builds the input frame for one tick.
func (c *Controls) Frame(b Buttons) core.InputFrame {
	frame := core.NewInputFrame()

	if b.Left {
		frame.Set(core.ActionLeft)
	}
	if b.Right {
		frame.Set(core.ActionRight)
	}
	if c.start.Update(b.Start) {
		frame.Set(core.ActionStart)
	}
	if c.pause.Update(b.Pause) {
		frame.Set(core.ActionPause)
	}
	if b.Quit {
		frame.Set(core.ActionQuit)
	}

	frame.Pointer = core.Pointer{X: b.CursorX, Y: b.CursorY, Pressed: b.MouseDown}
	return frame
}
