// Package sim drives a physics world one frame at a time for any drawing surface.
package sim

import (
	"errors"
	"sync"

	"ballworld/internal/logger"
	"ballworld/internal/physics"
)

// Stats accumulates counters over the life of a simulation.
type Stats struct {
	Frames  int
	Skipped int
	Bounces int
	Last    physics.FrameStats
}

// Sim resolves motion for a world against the current size of whatever surface shows it.
// Resolving and rendering are separate: call Tick, then draw Snapshot.
type Sim struct {
	world     *physics.World
	frameTime float64
	log       *logger.Logger

	mu       sync.Mutex
	stats    Stats
	onBounce []func(physics.CollisionEvent)
	lastSkip bool
}

// New returns a driver stepping world by frameTime units per Tick. log may be nil.
func New(world *physics.World, frameTime float64, log *logger.Logger) *Sim {
	return &Sim{world: world, frameTime: frameTime, log: log}
}

// OnBounce registers fn to run for every wall collision, on the goroutine calling Tick.
func (s *Sim) OnBounce(fn func(physics.CollisionEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onBounce = append(s.onBounce, fn)
}

// Tick resolves one frame in an arena of the given surface size. The arena is rebuilt every call,
// so a resized surface takes effect immediately. An invalid arena skips the frame: bodies keep
// their positions, the skip is logged once per run of bad frames, and the error is returned.
func (s *Sim) Tick(width, height float64) (physics.FrameStats, error) {
	arena := physics.NewArena(width, height)
	fs, err := s.world.Step(arena, s.frameTime, physics.WithImpactHook(s.bounced))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.stats.Skipped++
		var arenaErr *physics.InvalidArenaError
		if errors.As(err, &arenaErr) && !s.lastSkip {
			s.logf("frame skipped: %v", err)
		}
		s.lastSkip = true
		return fs, err
	}
	if s.lastSkip {
		s.logf("arena restored %gx%g", width, height)
	}
	s.lastSkip = false
	s.stats.Frames++
	s.stats.Bounces += fs.Bounces
	s.stats.Last = fs
	return fs, nil
}

func (s *Sim) bounced(ev physics.CollisionEvent) {
	s.mu.Lock()
	hooks := s.onBounce
	s.mu.Unlock()
	for _, fn := range hooks {
		fn(ev)
	}
}

func (s *Sim) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Logf(format, args...)
	}
}

// Stats returns the counters so far.
func (s *Sim) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Snapshot returns the bodies' current state for drawing.
func (s *Sim) Snapshot() []physics.Body {
	return s.world.Snapshot()
}

// FrameTime returns the simulated time consumed per Tick.
func (s *Sim) FrameTime() float64 {
	return s.frameTime
}
