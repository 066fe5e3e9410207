package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/feed-glutt/internal/audio"
	"github.com/vovakirdan/feed-glutt/internal/core"
	"github.com/vovakirdan/feed-glutt/internal/mint"
	"github.com/vovakirdan/feed-glutt/internal/registry"
)

// mintOpenedMsg reports the outcome of opening the mint URL.
type mintOpenedMsg struct {
	url string
	err error
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	logger *log.Logger
	audio  audio.Player
	opener mint.Opener
	url    string

	keys KeyMap
	help help.Model
	held holdLatch
	now  func() time.Time

	inputFrame core.InputFrame
	pointer    core.Pointer
	clicked    bool // A press arrived since the last tick
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, env registry.Env) Model {
	cfg := env.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	player := env.Audio
	if player == nil {
		player = audio.Nop{}
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		config:     cfg,
		logger:     logger,
		audio:      player,
		opener:     env.Opener,
		url:        env.Config.Mint.URL,
		keys:       DefaultKeyMap(),
		help:       h,
		held:       holdLatch{hold: time.Duration(env.Config.Input.HoldMS) * time.Millisecond},
		now:        time.Now,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight(cfg.ScreenH))

	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// playHeight leaves the last terminal row for the help footer.
func (m Model) playHeight(termH int) int {
	return max(termH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case mintOpenedMsg:
		if msg.err != nil {
			m.logger.Warn("mint open failed", "url", msg.url, "error", msg.err)
		} else {
			m.logger.Info("mint opened", "url", msg.url)
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.press(a, m.now())
	case core.ActionStart, core.ActionPause:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleMouse tracks the pointer in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	scene := m.game.Scene()
	m.pointer.X, m.pointer.Y = m.toWorld(msg.X, msg.Y, scene.WorldW, scene.WorldH)

	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.pointer.Pressed = true
			m.clicked = true
		case tea.MouseActionRelease:
			m.pointer.Pressed = false
		}
	} else if msg.Action == tea.MouseActionRelease {
		m.pointer.Pressed = false
	}
	return m, nil
}

// toWorld maps a terminal cell to the world point under its center.
func (m Model) toWorld(x, y, worldW, worldH int) (int, int) {
	w, h := m.screen.Width(), m.screen.Height()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return (2*x + 1) * worldW / (2 * w), (2*y + 1) * worldH / (2 * h)
}

// handleResize processes terminal resize events. The world is fixed size
// and only its projection changes, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickDelta(m.lastTick, now, m.config.TickInterval())
	m.lastTick = now

	m.held.apply(&m.inputFrame, m.now())
	m.inputFrame.Pointer = m.pointer
	if m.clicked {
		m.inputFrame.Pointer.Pressed = true
		m.clicked = false
	}

	result := m.game.Advance(dt, m.inputFrame)
	m.inputFrame.Clear()

	if result.State.Phase != m.gameState.Phase {
		m.logger.Info("phase changed",
			"from", m.gameState.Phase, "to", result.State.Phase,
			"score", result.State.Score, "hunger", result.State.Hunger)
		if result.State.Phase != core.PhasePlaying {
			m.held.release()
		}
	}
	m.gameState = result.State
	m.audio.HandleEvents(result.Events)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if result.Has(core.EventMint) {
		cmds = append(cmds, m.openMint())
	}
	return m, tea.Batch(cmds...)
}

// openMint opens the mint URL off the update loop.
func (m Model) openMint() tea.Cmd {
	opener, url := m.opener, m.url
	if opener == nil || url == "" {
		return nil
	}
	return func() tea.Msg {
		return mintOpenedMsg{url: url, err: opener.Open(url)}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}
