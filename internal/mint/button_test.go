package mint

import (
	"errors"
	"testing"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

func press(x, y int) core.Pointer   { return core.Pointer{X: x, Y: y, Pressed: true} }
func release(x, y int) core.Pointer { return core.Pointer{X: x, Y: y} }

func TestButtonFiresOncePerPress(t *testing.T) {
	b := NewButton(ButtonRect)
	inside := press(400, 570)

	if !b.Update(inside, true) {
		t.Fatal("first press over the button should fire")
	}
	for i := 0; i < 30; i++ {
		if b.Update(inside, true) {
			t.Fatalf("held button fired again on tick %d", i)
		}
	}

	b.Update(release(400, 570), true)
	if !b.Update(inside, true) {
		t.Error("a new press after release should fire")
	}
}

func TestButtonIgnoresPressOutside(t *testing.T) {
	b := NewButton(ButtonRect)

	if b.Update(press(10, 10), true) {
		t.Error("press outside the button should not fire")
	}
	// Dragging onto the button while still held fires once, then latches.
	if !b.Update(press(310, 560), true) {
		t.Error("held press moved onto the button should fire")
	}
	if b.Update(press(320, 560), true) {
		t.Error("should stay latched until release")
	}
}

func TestButtonInactive(t *testing.T) {
	b := NewButton(ButtonRect)

	if b.Update(press(400, 570), false) {
		t.Error("inactive button should not fire")
	}
	b.Update(release(400, 570), false)
	if !b.Update(press(400, 570), true) {
		t.Error("button should fire once active")
	}
}

func TestButtonHover(t *testing.T) {
	b := NewButton(ButtonRect)
	if !b.Hover(release(519, 599)) {
		t.Error("bottom-right inner pixel should hover")
	}
	if b.Hover(release(520, 570)) {
		t.Error("right edge is exclusive")
	}
}

func TestOpenerFunc(t *testing.T) {
	var got string
	o := OpenerFunc(func(url string) error {
		got = url
		return errors.New("no browser")
	})

	if err := o.Open(DefaultURL); err == nil {
		t.Error("expected error to be passed through")
	}
	if got != DefaultURL {
		t.Errorf("opened %q, expected %q", got, DefaultURL)
	}
}
