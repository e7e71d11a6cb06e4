package main

import (
	"ballworld/internal/debug"
	"ballworld/internal/graphics"
	"ballworld/internal/physics"
	"ballworld/internal/render"
)

func runWindow(a *app, width, height int32) error {
	player := a.enableSound()
	defer player.Close()

	scene := render.NewScene(a.scn, float64(width), float64(height))
	overlay := debug.New()
	overlay.ShowFPS = a.prefs.ShowFPS
	overlay.ShowMemAlloc = a.prefs.ShowMemAlloc
	overlay.ShowStats = a.prefs.ShowStats
	overlay.ShowLog = a.prefs.ShowLog
	overlay.Log = a.log

	var arena physics.Arena
	update := func(w, h float64) {
		aw, ah := scene.Viewport.Arena(w, h)
		arena = physics.NewArena(aw, ah)
		// An invalid arena (minimized window) is logged by the driver; positions are kept.
		_, _ = a.sim.Tick(aw, ah)
	}
	draw := func() {
		scene.Draw(arena, a.sim.Snapshot())
		overlay.Draw(a.sim.Stats())
	}

	graphics.Run(graphics.Window{
		Title:     "ballworld - " + a.scn.Name,
		Width:     width,
		Height:    height,
		TargetFPS: int32(a.prefs.TargetFPS),
	}, update, draw)
	return nil
}
