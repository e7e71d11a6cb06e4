package physics

import (
	"fmt"
	"sync"
)

const (
	// DefaultEpsilon is the frame time left over below which a frame counts as fully consumed.
	DefaultEpsilon = 1e-3
	// DefaultMinSubStep is the smallest time a collision sub-step may consume.
	// Repeated near-zero collisions in a corner would otherwise never finish the frame.
	DefaultMinSubStep = 1e-6
)

// FrameStats describes how one frame was resolved.
type FrameStats struct {
	SubSteps int     // impact queries run over all bodies
	Bounces  int     // wall reflections applied
	Consumed float64 // frame time actually integrated
}

type stepConfig struct {
	epsilon    float64
	minSubStep float64
	workers    int
	onImpact   func(CollisionEvent)
}

// Option tunes AdvanceFrame and World.
type Option func(*stepConfig)

// WithEpsilon sets the leftover frame time treated as zero. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(c *stepConfig) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithMinSubStep sets the time floor of a collision sub-step. Non-positive values are ignored.
func WithMinSubStep(floor float64) Option {
	return func(c *stepConfig) {
		if floor > 0 {
			c.minSubStep = floor
		}
	}
}

// WithWorkers runs impact queries on n goroutines over a snapshot of the bodies. n <= 1 keeps them serial.
func WithWorkers(n int) Option {
	return func(c *stepConfig) {
		c.workers = n
	}
}

// WithImpactHook registers fn to be called for every collision after the body is reflected.
func WithImpactHook(fn func(CollisionEvent)) Option {
	return func(c *stepConfig) {
		c.onImpact = fn
	}
}

func newStepConfig(opts []Option) stepConfig {
	c := stepConfig{
		epsilon:    DefaultEpsilon,
		minSubStep: DefaultMinSubStep,
		workers:    1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// AdvanceFrame moves every body through frameTimeLimit units of time inside a, reflecting
// off walls as many times as the frame requires. Each sub-step finds the globally earliest
// wall contact (lowest body index on ties), moves all bodies up to it, and reflects the body
// that touched. Time left at or below the epsilon is dropped.
//
// On error the frame stops; bodies keep whatever sub-steps completed before it, which for an
// invalid arena is none.
func AdvanceFrame(bodies []*Body, a Arena, frameTimeLimit float64, opts ...Option) (FrameStats, error) {
	var stats FrameStats
	if len(bodies) == 0 {
		return stats, nil
	}
	cfg := newStepConfig(opts)
	events := make([]CollisionEvent, len(bodies))

	remaining := frameTimeLimit
	for remaining > cfg.epsilon {
		if err := cfg.impacts(bodies, a, remaining, events); err != nil {
			return stats, err
		}
		stats.SubSteps++

		best := events[0]
		for _, ev := range events[1:] {
			if ev.TimeFraction < best.TimeFraction {
				best = ev
			}
		}

		if !best.Hit() || best.TimeFraction > remaining {
			for _, b := range bodies {
				b.advance(remaining)
			}
			stats.Consumed += remaining
			break
		}

		// A floored sub-step reflects at the contact and spends the rest of the floor
		// moving away from the wall. It never outruns the frame or another body's contact.
		hit := best.TimeFraction
		t := min(max(hit, cfg.minSubStep), remaining)
		for _, ev := range events {
			if ev.Body != best.Body && ev.TimeFraction < t {
				t = ev.TimeFraction
			}
		}
		for _, b := range bodies {
			b.advance(hit)
		}
		bodies[best.Body].reflect(best.Wall)
		if extra := t - hit; extra > 0 {
			for _, b := range bodies {
				b.advance(extra)
			}
		}
		stats.Bounces++
		stats.Consumed += t
		remaining -= t

		if cfg.onImpact != nil {
			cfg.onImpact(best)
		}
	}
	return stats, nil
}

// impacts fills events with each body's earliest wall contact within limit.
func (c *stepConfig) impacts(bodies []*Body, a Arena, limit float64, events []CollisionEvent) error {
	if c.workers <= 1 || len(bodies) < 2 {
		for i, b := range bodies {
			ev, err := earliestWallImpact(b, a, limit, i)
			if err != nil {
				return err
			}
			events[i] = ev
		}
		return nil
	}

	// Workers read a private copy so a caller mutating bodies outside World's lock cannot
	// race the query goroutines.
	snapshot, err := CloneBodies(bodies)
	if err != nil {
		return fmt.Errorf("snapshot bodies: %w", err)
	}
	workers := min(c.workers, len(snapshot))
	chunk := (len(snapshot) + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(snapshot))
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				ev, err := earliestWallImpact(snapshot[i], a, limit, i)
				if err != nil {
					errs[w] = err
					return
				}
				events[i] = ev
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// World holds the bodies sharing one arena and steps them a frame at a time.
// Insertion order is the tie-break order for simultaneous collisions.
type World struct {
	mu     sync.Mutex
	bodies []*Body
	opts   []Option
}

// NewWorld returns an empty world whose frames are resolved with opts.
func NewWorld(opts ...Option) *World {
	return &World{opts: opts}
}

// AddBody appends a body to the world.
func (w *World) AddBody(b *Body) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bodies = append(w.bodies, b)
}

// RemoveBody drops the body at index i, keeping the order of the rest. Out of range is a no-op.
func (w *World) RemoveBody(i int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bodies) {
		return
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
}

// Bodies returns the live bodies. Callers must not mutate them while Step runs.
func (w *World) Bodies() []*Body {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Len returns the number of bodies.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}

// Step resolves one frame of frameTime units in arena a. Extra options apply after the world's own.
func (w *World) Step(a Arena, frameTime float64, extra ...Option) (FrameStats, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	opts := append(w.opts[:len(w.opts):len(w.opts)], extra...)
	return AdvanceFrame(w.bodies, a, frameTime, opts...)
}

// Snapshot returns a copy of every body's state, safe to read while the world keeps stepping.
func (w *World) Snapshot() []Body {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Body, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = *b
	}
	return out
}
