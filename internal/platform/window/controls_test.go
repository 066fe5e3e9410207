package window

import (
	"testing"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

func TestControlsStartIsEdgeTriggered(t *testing.T) {
	var c Controls

	held := Buttons{Start: true}
	if !c.Frame(held).Has(core.ActionStart) {
		t.Fatal("first tick with Enter down should start")
	}
	for i := range 5 {
		if c.Frame(held).Has(core.ActionStart) {
			t.Fatalf("tick %d: holding Enter should not start again", i)
		}
	}

	c.Frame(Buttons{})
	if !c.Frame(held).Has(core.ActionStart) {
		t.Error("pressing Enter again should start")
	}
}

func TestControlsDirectionIsLevel(t *testing.T) {
	var c Controls

	tests := []struct {
		b   Buttons
		dir int
	}{
		{Buttons{Left: true}, -1},
		{Buttons{Left: true}, -1},
		{Buttons{Right: true}, 1},
		{Buttons{Left: true, Right: true}, 0},
		{Buttons{}, 0},
	}

	for i, tc := range tests {
		if got := c.Frame(tc.b).Direction(); got != tc.dir {
			t.Errorf("step %d: direction %d, expected %d", i, got, tc.dir)
		}
	}
}

func TestControlsPointer(t *testing.T) {
	var c Controls

	f := c.Frame(Buttons{CursorX: 310, CursorY: 560, MouseDown: true, Quit: true})
	if f.Pointer != (core.Pointer{X: 310, Y: 560, Pressed: true}) {
		t.Errorf("pointer = %+v", f.Pointer)
	}
	if !f.Has(core.ActionQuit) {
		t.Error("escape should map to quit")
	}
}
