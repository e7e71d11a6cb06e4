package main

import (
	"fmt"
	"io"
	"os"
)

// runHeadless steps the scenario in its own arena and prints every body's final state.
// A failing frame aborts the run: without a window the arena cannot change, so it would fail forever.
// A non-empty save path receives the final state as a scenario that resumes the run.
func runHeadless(out io.Writer, a *app, frames int, save string) error {
	for i := 0; i < frames; i++ {
		if _, err := a.sim.Tick(a.scn.Arena.Width, a.scn.Arena.Height); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	st := a.sim.Stats()
	fmt.Fprintf(out, "%s: %d frames of %g, %d bounces\n", a.scn.Name, st.Frames, a.sim.FrameTime(), st.Bounces)
	final := a.sim.Snapshot()
	for i, b := range final {
		fmt.Fprintf(out, "body %d: pos=(%.4f, %.4f) vel=(%.4f, %.4f) r=%g\n",
			i, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, b.Radius)
	}
	a.log.Logf("headless run: %d frames, %d bounces", st.Frames, st.Bounces)

	if save == "" {
		return nil
	}
	data, err := a.scn.WithBodies(final).Marshal()
	if err != nil {
		return fmt.Errorf("encode final state: %w", err)
	}
	if err := os.WriteFile(save, data, 0644); err != nil {
		return fmt.Errorf("save final state: %w", err)
	}
	a.log.Logf("final state saved to %s", save)
	return nil
}
