package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain reads a streamer to the end and returns its samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveTriangle} {
		samples := drain(t, NewTone(440, 100*time.Millisecond, w, testRate))

		if len(samples) != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, expected %d", w, len(samples), testRate.N(100*time.Millisecond))
		}
		for i, s := range samples {
			if math.Abs(s[0]) > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d out of range or not mono: %v", w, i, s)
			}
		}
		if last := samples[len(samples)-1][0]; math.Abs(last) > 0.05 {
			t.Errorf("wave %d: tail %f should be faded out", w, last)
		}
	}
}

func TestBuildCuesFinish(t *testing.T) {
	for _, c := range []Cue{CueCatch, CuePenalty, CueWin, CueLose} {
		if samples := drain(t, Build(c, testRate)); len(samples) == 0 {
			t.Errorf("cue %d produced no samples", c)
		}
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event core.Event
		cue   Cue
		ok    bool
	}{
		{core.Event{Kind: core.EventCaught, Value: 10}, CueCatch, true},
		{core.Event{Kind: core.EventCaught, Value: -5}, CuePenalty, true},
		{core.Event{Kind: core.EventWon}, CueWin, true},
		{core.Event{Kind: core.EventLost}, CueLose, true},
		{core.Event{Kind: core.EventMissed, Value: 5}, 0, false},
		{core.Event{Kind: core.EventSpawned}, 0, false},
	}

	for _, tc := range tests {
		cue, ok := CueFor(tc.event)
		if ok != tc.ok || (ok && cue != tc.cue) {
			t.Errorf("CueFor(%v) = (%d, %v), expected (%d, %v)", tc.event.Kind, cue, ok, tc.cue, tc.ok)
		}
	}
}

func TestVolumeSilent(t *testing.T) {
	samples := drain(t, withVolume(NewTone(440, 20*time.Millisecond, WaveSquare, testRate), 0))
	for _, s := range samples {
		if s[0] != 0 {
			t.Fatal("zero volume should be silent")
		}
	}
}
