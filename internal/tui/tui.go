// Package tui shows a simulation in a terminal.
package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"ballworld/internal/physics"
	"ballworld/internal/scenario"
	"ballworld/internal/sim"
)

// cellAspect is how many arena rows a terminal cell covers relative to its width.
// Cells are roughly twice as tall as they are wide.
const cellAspect = 2

// Config tunes the terminal front end.
type Config struct {
	FPS       int
	ShowStats bool
}

// Terminal draws bodies as glyphs, one cell per arena column and cellAspect arena rows.
// The bottom line is reserved for status text.
type Terminal struct {
	screen   tcell.Screen
	sim      *sim.Sim
	scn      *scenario.Scenario
	viewport sim.Viewport
	cfg      Config
	styles   []tcell.Style
}

// New prepares a terminal front end. screen must already be initialized; the caller owns Fini.
func New(screen tcell.Screen, s *sim.Sim, scn *scenario.Scenario, cfg Config) *Terminal {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	t := &Terminal{screen: screen, sim: s, scn: scn, cfg: cfg}
	w, h := t.surface()
	t.viewport = sim.FitViewport(scn.Arena.Width, scn.Arena.Height, w, h)
	for i := range scn.Bodies {
		c := scn.BodyColor(i)
		t.styles = append(t.styles, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
	}
	return t
}

// surface returns the drawable area in half-cell units.
func (t *Terminal) surface() (w, h float64) {
	cols, rows := t.screen.Size()
	return float64(cols), float64(max(rows-1, 0) * cellAspect)
}

// Run ticks and redraws at the configured rate until ctx is done or the user presses q, Esc or Ctrl-C.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			t.Frame()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Frame resolves one frame against the current terminal size and draws the result.
func (t *Terminal) Frame() {
	w, h := t.viewport.Arena(t.surface())
	_, err := t.sim.Tick(w, h)
	t.Draw(err)
}

// Draw renders the bodies and, if enabled, the status line. frameErr is shown in place of stats.
func (t *Terminal) Draw(frameErr error) {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	for i, b := range t.sim.Snapshot() {
		x, y := t.viewport.ToSurface(b.Position)
		cx, cy := int(math.Floor(x)), int(math.Floor(y/cellAspect))
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows-1 {
			continue
		}
		t.screen.SetContent(cx, cy, glyph(b, t.viewport), nil, t.style(i))
	}
	if rows > 0 {
		t.drawStatus(rows-1, cols, frameErr)
	}
	t.screen.Show()
}

func (t *Terminal) style(i int) tcell.Style {
	if i < len(t.styles) {
		return t.styles[i]
	}
	return tcell.StyleDefault
}

// glyph picks a larger mark for bodies wider than a cell.
func glyph(b physics.Body, v sim.Viewport) rune {
	if b.Radius*v.Scale >= 1.5 {
		return 'O'
	}
	return 'o'
}

func (t *Terminal) drawStatus(row, cols int, frameErr error) {
	var line string
	switch {
	case frameErr != nil:
		line = frameErr.Error()
	case t.cfg.ShowStats:
		st := t.sim.Stats()
		line = fmt.Sprintf("%s  frames %d  bounces %d  substeps %d  skipped %d  [q] quit",
			t.scn.Name, st.Frames, st.Bounces, st.Last.SubSteps, st.Skipped)
	default:
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(line) {
		if i >= cols {
			break
		}
		t.screen.SetContent(i, row, r, nil, style)
	}
}
