package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/feed-glutt/internal/config"
	"github.com/vovakirdan/feed-glutt/internal/registry"
)

func init() {
	registry.Register(config.FrontendTerminal, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend runs the game full-screen in the terminal.
type Frontend struct{}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return config.FrontendTerminal
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Full-screen terminal UI (keyboard and mouse)"
}

// Run starts the Bubble Tea program and blocks until the player quits.
func (Frontend) Run(game registry.Game, env registry.Env) error {
	model := NewModel(game, env)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	if fm, ok := final.(Model); ok {
		st := fm.State()
		model.logger.Info("session ended", "phase", st.Phase, "score", st.Score)
	}
	return nil
}
