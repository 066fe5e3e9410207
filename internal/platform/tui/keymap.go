package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// holdLatch turns discrete key-repeat presses into a held direction.
// Terminals report no key releases, so a direction counts as held until
// hold has passed without another press.
type holdLatch struct {
	hold     time.Duration
	leftEnd  time.Time
	rightEnd time.Time
}

func (h *holdLatch) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.leftEnd = now.Add(h.hold)
		h.rightEnd = time.Time{}
	case core.ActionRight:
		h.rightEnd = now.Add(h.hold)
		h.leftEnd = time.Time{}
	}
}

// apply sets the held directions on frame.
func (h *holdLatch) apply(frame *core.InputFrame, now time.Time) {
	if now.Before(h.leftEnd) {
		frame.Set(core.ActionLeft)
	}
	if now.Before(h.rightEnd) {
		frame.Set(core.ActionRight)
	}
}

func (h *holdLatch) release() {
	h.leftEnd = time.Time{}
	h.rightEnd = time.Time{}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
