// Package mint implements the "Mint Collectible" affordance on the victory
// screen: a click latch and the browser hand-off.
package mint

import "github.com/vovakirdan/feed-glutt/internal/core"

// DefaultURL is the collection page opened by the button.
const DefaultURL = "https://opensea.io/collection/gluttog/overview"

// ButtonRect is the button position in world coordinates.
var ButtonRect = core.NewRect(300, 550, 220, 50)

// Button fires at most once per press-release cycle of the primary mouse
// button, and only when the press lands on the button.
type Button struct {
	rect    core.Rect
	latched bool
}

// NewButton creates a button covering r.
func NewButton(r core.Rect) *Button {
	return &Button{rect: r}
}

// Rect returns the button area.
func (b *Button) Rect() core.Rect {
	return b.rect
}

// Hover reports whether the pointer is over the button.
func (b *Button) Hover(p core.Pointer) bool {
	return b.rect.Contains(p.X, p.Y)
}

// Update feeds one tick of pointer state. It returns true on the tick the
// click should fire. Releasing the button re-arms it even while inactive.
func (b *Button) Update(p core.Pointer, active bool) bool {
	if !p.Pressed {
		b.latched = false
		return false
	}
	if b.latched || !active || !b.Hover(p) {
		return false
	}
	b.latched = true
	return true
}

// Reset re-arms the button.
func (b *Button) Reset() {
	b.latched = false
}
