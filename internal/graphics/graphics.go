package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window the simulation opens.
type Window struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
}

// Run opens a resizable window and runs the main loop. Each frame it calls update with the
// current drawable size (the arena follows the window), then clears the screen and calls draw.
// Physics and drawing stay separate so update never touches the GPU. Close via window button or Esc.
func Run(w Window, update func(width, height float64), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	if w.TargetFPS > 0 {
		rl.SetTargetFPS(w.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
