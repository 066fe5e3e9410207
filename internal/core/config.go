package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal frontend only)
	ScreenH  int   // Terminal height in characters (terminal frontend only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the nominal duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Phase is the round lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase only exits through a restart.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// GameState is the scoring state reported to the platform after each tick.
type GameState struct {
	Score  int
	Hunger int
	Phase  Phase
	Paused bool
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventCaught
	EventMissed
	EventStarted
	EventWon
	EventLost
	EventMint // Mint button was clicked in the Won scene
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventCaught:
		return "caught"
	case EventMissed:
		return "missed"
	case EventStarted:
		return "started"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventMint:
		return "mint"
	default:
		return "unknown"
	}
}

// Event is a single tick event. Value carries the point value for
// Spawned/Caught/Missed and is zero otherwise.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Sprite is a drawable object in a scene snapshot.
type Sprite struct {
	ID    string // Asset key, e.g. "object3"
	Rect  Rect
	Value int
}

// Scene is a read-only snapshot of everything a presenter needs to draw
// one frame, in world coordinates.
type Scene struct {
	WorldW, WorldH int
	State          GameState
	Player         Rect
	Objects        []Sprite
	MintButton     Rect
	MintHover      bool
	VictoryRoll    int // Picks the victory art; fixed once per win
}
