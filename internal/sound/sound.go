// Package sound plays a short click whenever a body hits a wall.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"ballworld/internal/physics"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 40 * time.Millisecond
	// clickVolume is in beep's log2 scale: -2 is a quarter of full amplitude.
	clickVolume = -2
)

// Player emits bounce clicks. A Player that failed to open the audio device, or was
// never enabled, silently does nothing.
type Player struct {
	mu    sync.Mutex
	ready bool
}

// New returns a Player. When enabled it opens the speaker; failure is returned but the
// Player stays usable and silent, so callers can treat it as non-fatal.
func New(enabled bool) (*Player, error) {
	p := &Player{}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

// Enabled reports whether clicks will be audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Bounce plays the click for ev's wall. Horizontal and vertical walls get different pitches.
func (p *Player) Bounce(ev physics.CollisionEvent) {
	if !p.Enabled() || !ev.Hit() {
		return
	}
	tone, err := generators.SineTone(sampleRate, Pitch(ev.Wall))
	if err != nil {
		return
	}
	click := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(clickDuration), tone),
		Base:     2,
		Volume:   clickVolume,
	}
	speaker.Play(click)
}

// Pitch returns the click frequency in Hz for a wall, 0 for WallNone.
func Pitch(w physics.Wall) float64 {
	switch {
	case w == physics.WallNone:
		return 0
	case w.Horizontal():
		return 660
	default:
		return 880
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
