package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ballworld/internal/logger"
	"ballworld/internal/sim"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// refreshEvery: overlay text is rebuilt only every N frames to limit allocations.
	refreshEvery = 30
	logLines     = 3
)

// Overlay draws runtime counters in the top-right corner: FPS, heap, simulation stats
// and the newest log lines. Everything is off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	ShowLog      bool
	Log          *logger.Logger

	frame    uint32
	lines    []string
	memStats runtime.MemStats
}

// New returns an overlay with all counters hidden.
func New() *Overlay {
	return &Overlay{}
}

// Lines builds the overlay text. fps is the measured frame rate; stats come from the simulation driver.
func (o *Overlay) Lines(fps int32, stats sim.Stats) []string {
	var out []string
	if o.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
	}
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.memStats)
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024)))
	}
	if o.ShowStats {
		out = append(out,
			fmt.Sprintf("Frames: %d  Skipped: %d", stats.Frames, stats.Skipped),
			fmt.Sprintf("Bounces: %d  Sub-steps: %d", stats.Bounces, stats.Last.SubSteps),
		)
	}
	if o.ShowLog && o.Log != nil {
		out = append(out, o.Log.Tail(logLines)...)
	}
	return out
}

// Draw renders enabled counters. Call after the scene in the draw loop.
func (o *Overlay) Draw(stats sim.Stats) {
	if !o.ShowFPS && !o.ShowMemAlloc && !o.ShowStats && !o.ShowLog {
		return
	}
	if o.frame%refreshEvery == 0 || o.lines == nil {
		o.lines = o.Lines(rl.GetFPS(), stats)
	}
	o.frame++

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range o.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
