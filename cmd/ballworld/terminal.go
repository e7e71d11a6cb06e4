package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"ballworld/internal/tui"
)

func runTerminal(a *app) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	player := a.enableSound()
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := tui.New(screen, a.sim, a.scn, tui.Config{FPS: a.prefs.TargetFPS, ShowStats: a.prefs.ShowStats})
	if err := term.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	st := a.sim.Stats()
	a.log.Logf("terminal closed after %d frames, %d bounces, %d skipped", st.Frames, st.Bounces, st.Skipped)
	return nil
}
