package core

import "testing"

func TestRisingEdge(t *testing.T) {
	tests := []struct {
		prev, curr, expected bool
	}{
		{false, false, false},
		{false, true, true},
		{true, true, false},
		{true, false, false},
	}

	for _, tc := range tests {
		if got := RisingEdge(tc.prev, tc.curr); got != tc.expected {
			t.Errorf("RisingEdge(%v, %v) = %v, expected %v", tc.prev, tc.curr, got, tc.expected)
		}
	}
}

func TestEdgeDetectorFiresOncePerPress(t *testing.T) {
	var d EdgeDetector
	samples := []bool{false, true, true, true, false, true, false}
	expected := []bool{false, true, false, false, false, true, false}

	for i, s := range samples {
		if got := d.Update(s); got != expected[i] {
			t.Errorf("sample %d: Update(%v) = %v, expected %v", i, s, got, expected[i])
		}
	}

	d.Reset()
	if !d.Update(true) {
		t.Error("after Reset, a held signal should fire again")
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	if f.Direction() != 0 {
		t.Error("empty frame should have no direction")
	}

	f.Set(ActionLeft)
	if f.Direction() != -1 {
		t.Errorf("left only: Direction() = %d", f.Direction())
	}

	f.Set(ActionRight)
	if f.Direction() != 0 {
		t.Errorf("left+right should cancel, got %d", f.Direction())
	}

	f.Clear()
	f.Set(ActionRight)
	if f.Direction() != 1 {
		t.Errorf("right only: Direction() = %d", f.Direction())
	}
}
