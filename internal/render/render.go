// Package render draws a simulation with raylib. It only reads body snapshots; all motion is resolved elsewhere.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ballworld/internal/physics"
	"ballworld/internal/scenario"
	"ballworld/internal/sim"
)

const (
	borderThickness = 2
	borderAlpha     = 120
	// minPixelRadius keeps point bodies visible.
	minPixelRadius = 2
)

// Scene holds what is needed to turn body snapshots into draw calls.
type Scene struct {
	Viewport sim.Viewport
	colors   []rl.Color
}

// NewScene fits scn's arena into a surfW x surfH window.
func NewScene(scn *scenario.Scenario, surfW, surfH float64) *Scene {
	s := &Scene{Viewport: sim.FitViewport(scn.Arena.Width, scn.Arena.Height, surfW, surfH)}
	for i := range scn.Bodies {
		s.colors = append(s.colors, ToColor(scn.BodyColor(i)))
	}
	return s
}

// ToColor converts a scenario color to an opaque raylib color.
func ToColor(c scenario.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// Circle is a body in window coordinates.
type Circle struct {
	Center rl.Vector2
	Radius float32
	Color  rl.Color
}

// Circles converts bodies to window-space circles.
func (s *Scene) Circles(bodies []physics.Body) []Circle {
	out := make([]Circle, len(bodies))
	for i, b := range bodies {
		x, y := s.Viewport.ToSurface(b.Position)
		r := float32(b.Radius * s.Viewport.Scale)
		if r < minPixelRadius {
			r = minPixelRadius
		}
		out[i] = Circle{Center: rl.NewVector2(float32(x), float32(y)), Radius: r, Color: s.color(i)}
	}
	return out
}

func (s *Scene) color(i int) rl.Color {
	if i < len(s.colors) {
		return s.colors[i]
	}
	return ToColor(scenario.DefaultColor)
}

// Draw outlines the arena and fills every body. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw(arena physics.Arena, bodies []physics.Body) {
	w := float32(arena.Width() * s.Viewport.Scale)
	h := float32(arena.Height() * s.Viewport.Scale)
	rl.DrawRectangleLinesEx(rl.NewRectangle(0, 0, w, h), borderThickness, rl.NewColor(255, 255, 255, borderAlpha))
	for _, c := range s.Circles(bodies) {
		rl.DrawCircleV(c.Center, c.Radius, c.Color)
	}
}
