// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator with a linear fade-out so cues end
// without a click.
type tone struct {
	freq     float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
	fadeFrom int
}

// NewTone creates a streamer that plays freq for d.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &tone{
		freq:     freq,
		wave:     wave,
		rate:     rate,
		total:    total,
		fadeFrom: total * 3 / 4,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}

		if t.pos >= t.fadeFrom && t.total > t.fadeFrom {
			v *= float64(t.total-t.pos) / float64(t.total-t.fadeFrom)
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer linearly; vol 0 is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue is a named sound.
type Cue int

const (
	CueCatch Cue = iota
	CuePenalty
	CueWin
	CueLose
)

// Build returns the streamer for a cue.
func Build(c Cue, rate beep.SampleRate) beep.Streamer {
	note := func(freq float64, ms int, w Wave) beep.Streamer {
		return NewTone(freq, time.Duration(ms)*time.Millisecond, w, rate)
	}

	switch c {
	case CueCatch:
		return beep.Seq(note(880, 50, WaveSine), note(1320, 70, WaveSine))
	case CuePenalty:
		return note(140, 180, WaveSquare)
	case CueWin:
		return beep.Seq(
			note(523, 120, WaveTriangle),
			note(659, 120, WaveTriangle),
			note(784, 120, WaveTriangle),
			note(1047, 300, WaveTriangle),
		)
	case CueLose:
		return beep.Seq(
			note(392, 200, WaveSquare),
			note(311, 200, WaveSquare),
			note(247, 400, WaveSquare),
		)
	default:
		return beep.Silence(0)
	}
}
