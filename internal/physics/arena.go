package physics

import (
	"errors"
	"fmt"
)

// ErrNonPositiveTimeLimit is returned when an impact query is asked to look zero or negative time ahead.
var ErrNonPositiveTimeLimit = errors.New("physics: time limit must be positive")

// InvalidArenaError reports an arena with zero or negative width or height.
// Drivers should skip the frame's motion and keep previous positions.
type InvalidArenaError struct {
	Width, Height float64
}

func (e *InvalidArenaError) Error() string {
	return fmt.Sprintf("physics: invalid arena %gx%g", e.Width, e.Height)
}

// Arena is the axis-aligned rectangle bodies bounce inside. Y grows downward, so Top < Bottom.
type Arena struct {
	Left, Top, Right, Bottom float64
}

// NewArena returns the arena [0,width] x [0,height], as read from a drawing surface.
func NewArena(width, height float64) Arena {
	return Arena{Right: width, Bottom: height}
}

func (a Arena) Width() float64  { return a.Right - a.Left }
func (a Arena) Height() float64 { return a.Bottom - a.Top }

// Validate returns *InvalidArenaError when the arena is degenerate.
func (a Arena) Validate() error {
	if !(a.Width() > 0) || !(a.Height() > 0) {
		return &InvalidArenaError{Width: a.Width(), Height: a.Height()}
	}
	return nil
}

// Contains reports whether b's bounding circle lies inside the arena, allowing tol of overshoot.
func (a Arena) Contains(b *Body, tol float64) bool {
	r := b.Radius
	p := b.Position
	return p.X >= a.Left+r-tol && p.X <= a.Right-r+tol &&
		p.Y >= a.Top+r-tol && p.Y <= a.Bottom-r+tol
}
