package glutt

import (
	"math/rand"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

// FallingObject is a piece of food on its way down.
type FallingObject struct {
	Rect   core.Rect
	Speed  int // Pixels per tick, in [MinFallSpeed, MaxFallSpeed]
	Sprite string
	Value  int
}

// Spawner creates falling objects. It owns its RNG so a seed fully
// determines the sequence of spawns.
type Spawner struct {
	rng    *rand.Rand
	table  []SpawnEntry
	worldW int
}

// NewSpawner creates a spawner over the given table.
func NewSpawner(seed int64, table []SpawnEntry, worldW int) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		table:  table,
		worldW: worldW,
	}
}

// Spawn returns a new object just above the top edge. Every table entry is
// equally likely; x keeps the whole object on screen.
func (s *Spawner) Spawn() FallingObject {
	entry := s.table[s.rng.Intn(len(s.table))]

	maxX := s.worldW - ObjectSize
	if maxX < 0 {
		maxX = 0
	}
	x := s.rng.Intn(maxX + 1)
	speed := MinFallSpeed + s.rng.Intn(MaxFallSpeed-MinFallSpeed+1)

	return FallingObject{
		Rect:   core.NewRect(x, -ObjectSize, ObjectSize, ObjectSize),
		Speed:  speed,
		Sprite: entry.Sprite,
		Value:  entry.Value,
	}
}
