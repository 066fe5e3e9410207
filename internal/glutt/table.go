// Package glutt implements Feed Glutt: the player moves Glutt along the
// bottom of the screen to catch falling food. Catches raise the score and
// the hunger meter; a full meter at 500 points wins, an empty one loses.
package glutt

import "time"

// World dimensions and tuning, in logical pixels and ticks at 60 TPS.
const (
	WorldWidth   = 800
	WorldHeight  = 600
	PlayerWidth  = 200
	PlayerHeight = 200
	PlayerSpeed  = 15 // Horizontal pixels per tick while a direction is held
	PlayerStartX = WorldWidth / 2
	PlayerStartY = WorldHeight - 150
	ObjectSize   = 64
	MinFallSpeed = 3
	MaxFallSpeed = 6
)

// Rules.
const (
	SpawnInterval = 333 * time.Millisecond
	WinningScore  = 500
	StartHunger   = 10
	MinHunger     = 0
	MaxHunger     = 100
	LosingHunger  = 0
)

// SpawnEntry pairs a sprite with the points it is worth when caught.
type SpawnEntry struct {
	Sprite string
	Value  int
}

// spawnTable is the fixed list every spawn draws from uniformly.
// object7 is the penalty food.
var spawnTable = [...]SpawnEntry{
	{Sprite: "object1", Value: 1},
	{Sprite: "object2", Value: 10},
	{Sprite: "object3", Value: 15},
	{Sprite: "object4", Value: 5},
	{Sprite: "object5", Value: 5},
	{Sprite: "object6", Value: 5},
	{Sprite: "object7", Value: -5},
}

// SpawnTable returns a copy of the spawn table in its fixed order.
func SpawnTable() []SpawnEntry {
	out := make([]SpawnEntry, len(spawnTable))
	copy(out, spawnTable[:])
	return out
}
