package sim

import "ballworld/internal/physics"

// Viewport maps surface units (pixels, terminal half-cells) to arena units with a scale fixed at
// startup, so the scenario's arena fits the first surface and later resizes grow or shrink the
// arena instead of stretching it.
type Viewport struct {
	Scale float64 // surface units per arena unit
}

// FitViewport returns the largest scale at which an arenaW x arenaH arena fits a surfW x surfH surface.
// Degenerate sizes yield a scale of 1.
func FitViewport(arenaW, arenaH, surfW, surfH float64) Viewport {
	if arenaW <= 0 || arenaH <= 0 || surfW <= 0 || surfH <= 0 {
		return Viewport{Scale: 1}
	}
	return Viewport{Scale: min(surfW/arenaW, surfH/arenaH)}
}

// Arena returns the arena size, in arena units, covered by a surface of the given size.
func (v Viewport) Arena(surfW, surfH float64) (width, height float64) {
	return surfW / v.Scale, surfH / v.Scale
}

// ToSurface converts an arena point to surface coordinates.
func (v Viewport) ToSurface(p physics.Vec2) (x, y float64) {
	return p.X * v.Scale, p.Y * v.Scale
}
