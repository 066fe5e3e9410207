package glutt

import (
	"time"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

// Input is the per-tick intent fed to the simulation.
type Input struct {
	Dx int // Horizontal displacement in pixels
}

// Simulation owns all mutable round state. Step is the only writer;
// presenters read through the accessors after Step returns.
type Simulation struct {
	state      State
	player     core.Rect
	objects    []FallingObject
	sinceSpawn time.Duration
	spawner    *Spawner
}

// NewSimulation creates a simulation waiting for the first start action.
func NewSimulation(seed int64) *Simulation {
	return &Simulation{
		state:   State{Hunger: StartHunger, Phase: core.PhaseNotStarted},
		player:  core.NewRect(PlayerStartX, PlayerStartY, PlayerWidth, PlayerHeight),
		objects: make([]FallingObject, 0, 32),
		spawner: NewSpawner(seed, SpawnTable(), WorldWidth),
	}
}

// Start enters Playing from NotStarted, Won or Lost: score 0, hunger 10,
// no live objects, spawn timer reset. The player keeps its position.
// Returns false while a round is already in progress.
func (s *Simulation) Start() bool {
	if !s.state.CanStart() {
		return false
	}
	s.state.begin()
	s.objects = s.objects[:0]
	s.sinceSpawn = 0
	return true
}

// Step advances one tick by dt of wall-clock time. Outside Playing it does
// nothing.
//
// Order within a tick: move the player, maybe spawn, move every object and
// resolve it (off-screen removal is checked before the collision test),
// then evaluate win/lose.
func (s *Simulation) Step(dt time.Duration, in Input) []core.Event {
	if s.state.Phase != core.PhasePlaying {
		return nil
	}

	var events []core.Event

	s.player.X = core.Clamp(s.player.X+in.Dx, 0, WorldWidth-s.player.W)

	s.sinceSpawn += dt
	if s.sinceSpawn > SpawnInterval {
		obj := s.spawner.Spawn()
		s.objects = append(s.objects, obj)
		s.sinceSpawn = 0
		events = append(events, core.Event{Kind: core.EventSpawned, Value: obj.Value})
	}

	live := s.objects[:0]
	for _, obj := range s.objects {
		obj.Rect.Y += obj.Speed

		if obj.Rect.Y > WorldHeight {
			events = append(events, core.Event{Kind: core.EventMissed, Value: obj.Value})
			continue
		}
		if s.player.Intersects(obj.Rect) {
			s.state.feed(obj.Value)
			events = append(events, core.Event{Kind: core.EventCaught, Value: obj.Value})
			continue
		}
		live = append(live, obj)
	}
	s.objects = live

	if phase, changed := s.state.evaluate(); changed {
		kind := core.EventLost
		if phase == core.PhaseWon {
			kind = core.EventWon
		}
		events = append(events, core.Event{Kind: kind})
	}

	return events
}

// State returns the current score, hunger and phase.
func (s *Simulation) State() State {
	return s.state
}

// Player returns the player rectangle.
func (s *Simulation) Player() core.Rect {
	return s.player
}

// Objects returns the live objects. The slice is owned by the simulation
// and only valid until the next Step.
func (s *Simulation) Objects() []FallingObject {
	return s.objects
}
