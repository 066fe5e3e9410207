package glutt

import "github.com/vovakirdan/feed-glutt/internal/core"

// State is the score, hunger meter and round phase.
// Hunger never leaves [MinHunger, MaxHunger].
type State struct {
	Score  int
	Hunger int
	Phase  core.Phase
}

// CanStart reports whether a start/restart action is accepted.
func (s State) CanStart() bool {
	return s.Phase != core.PhasePlaying
}

// begin enters Playing with fresh counters.
func (s *State) begin() {
	s.Score = 0
	s.Hunger = StartHunger
	s.Phase = core.PhasePlaying
}

// feed applies a caught object's value. Score is unbounded in both
// directions.
func (s *State) feed(value int) {
	s.Score += value
	s.Hunger = core.Clamp(s.Hunger+value, MinHunger, MaxHunger)
}

// evaluate applies the end-of-tick transitions and returns the new phase
// if one happened.
func (s *State) evaluate() (core.Phase, bool) {
	if s.Phase != core.PhasePlaying {
		return s.Phase, false
	}
	switch {
	case s.Score >= WinningScore && s.Hunger == MaxHunger:
		s.Phase = core.PhaseWon
	case s.Hunger <= LosingHunger:
		s.Phase = core.PhaseLost
	default:
		return s.Phase, false
	}
	return s.Phase, true
}
