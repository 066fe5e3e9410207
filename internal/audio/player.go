package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/feed-glutt/internal/core"
)

// Player turns tick events into sounds.
type Player interface {
	HandleEvents(events []core.Event)
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) HandleEvents([]core.Event) {}
func (Nop) Close()                    {}

// SpeakerPlayer plays cues through the system speaker. All cues share one
// mixer that the speaker goroutine drains.
type SpeakerPlayer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewSpeakerPlayer initializes the speaker. It fails when no audio device
// is available; callers fall back to Nop.
func NewSpeakerPlayer(sampleRate int, volume float64) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := &SpeakerPlayer{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// HandleEvents plays the cue for each event that has one.
func (p *SpeakerPlayer) HandleEvents(events []core.Event) {
	for _, e := range events {
		if cue, ok := CueFor(e); ok {
			p.Play(cue)
		}
	}
}

// Play queues one cue on the mixer.
func (p *SpeakerPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	s := withVolume(Build(c, p.rate), p.volume)

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences and releases the speaker.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// CueFor maps a game event to its sound.
func CueFor(e core.Event) (Cue, bool) {
	switch e.Kind {
	case core.EventCaught:
		if e.Value < 0 {
			return CuePenalty, true
		}
		return CueCatch, true
	case core.EventWon:
		return CueWin, true
	case core.EventLost:
		return CueLose, true
	default:
		return 0, false
	}
}
