package alert

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneHz       = 880.0
	toneDuration = 60 * time.Millisecond
	minInterval  = 500 * time.Millisecond
)

// Bell plays a short audible tone when surfaced messages warrant
// attention. A failed speaker init leaves the bell permanently silent,
// the client runs fine without audio.
type Bell struct {
	mu       sync.Mutex
	enabled  bool
	lastRing time.Time
}

// NewBell initializes the speaker. enabled=false skips audio entirely.
func NewBell(enabled bool) *Bell {
	b := &Bell{}
	if !enabled {
		return b
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return b
	}
	b.enabled = true
	return b
}

// Enabled reports whether the bell can ring
func (b *Bell) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// Ring plays the alert tone. Rings closer together than minInterval are
// dropped so a burst of errors does not stack tones.
func (b *Bell) Ring() {
	b.mu.Lock()
	if !b.enabled || time.Since(b.lastRing) < minInterval {
		b.mu.Unlock()
		return
	}
	b.lastRing = time.Now()
	b.mu.Unlock()

	tone, err := generators.SineTone(sampleRate, toneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), tone))
}

// Close releases the speaker
func (b *Bell) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.enabled {
		speaker.Close()
		b.enabled = false
	}
}
