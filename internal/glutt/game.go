package glutt

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/feed-glutt/internal/core"
	"github.com/vovakirdan/feed-glutt/internal/mint"
)

// Game adapts the simulation to the platform: it turns input frames into
// simulation input, handles start/pause, and drives the mint button.
type Game struct {
	sim         *Simulation
	config      core.RuntimeConfig
	mint        *mint.Button
	rng         *rand.Rand // Victory art only; the spawner has its own
	pointer     core.Pointer
	paused      bool
	victoryRoll int
}

// New creates a new Feed Glutt game instance.
func New() *Game {
	return &Game{
		mint: mint.NewButton(mint.ButtonRect),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "glutt"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Feed GLUTT!"
}

// Reset returns to the start menu with a fresh simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.sim = NewSimulation(cfg.Seed)
	g.rng = rand.New(rand.NewSource(cfg.Seed ^ 0x5eed))
	g.mint.Reset()
	g.pointer = core.Pointer{}
	g.paused = false
	g.victoryRoll = 0
}

// Step advances the game by one nominal tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(g.config.TickInterval(), in)
}

// Advance advances the game by one tick that took dt of wall-clock time.
func (g *Game) Advance(dt time.Duration, in core.InputFrame) core.StepResult {
	var events []core.Event

	g.pointer = in.Pointer
	phase := g.sim.State().Phase

	if in.Has(core.ActionStart) && g.sim.Start() {
		g.paused = false
		events = append(events, core.Event{Kind: core.EventStarted})
		phase = core.PhasePlaying
	} else if in.Has(core.ActionPause) && phase == core.PhasePlaying {
		g.paused = !g.paused
	}

	if !g.paused {
		tickEvents := g.sim.Step(dt, Input{Dx: in.Direction() * PlayerSpeed})
		for _, e := range tickEvents {
			if e.Kind == core.EventWon {
				g.victoryRoll = g.rng.Int()
			}
		}
		events = append(events, tickEvents...)
		phase = g.sim.State().Phase
	}

	if g.mint.Update(g.pointer, phase == core.PhaseWon) {
		events = append(events, core.Event{Kind: core.EventMint})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:  st.Score,
		Hunger: st.Hunger,
		Phase:  st.Phase,
		Paused: g.paused,
	}
}

// Scene returns a snapshot for presenters.
func (g *Game) Scene() core.Scene {
	objs := g.sim.Objects()
	sprites := make([]core.Sprite, len(objs))
	for i, o := range objs {
		sprites[i] = core.Sprite{ID: o.Sprite, Rect: o.Rect, Value: o.Value}
	}

	return core.Scene{
		WorldW:      WorldWidth,
		WorldH:      WorldHeight,
		State:       g.State(),
		Player:      g.sim.Player(),
		Objects:     sprites,
		MintButton:  g.mint.Rect(),
		MintHover:   g.mint.Hover(g.pointer),
		VictoryRoll: g.victoryRoll,
	}
}
