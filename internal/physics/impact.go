package physics

import "math"

// Wall identifies which side of the arena a body touched.
type Wall uint8

const (
	WallNone Wall = iota
	WallLeft
	WallRight
	WallTop
	WallBottom
)

func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Horizontal reports whether the wall bounds the x axis (left or right).
func (w Wall) Horizontal() bool {
	return w == WallLeft || w == WallRight
}

// NoImpact is the TimeFraction of an event that found no wall within its time limit.
var NoImpact = math.Inf(1)

// CollisionEvent is the earliest wall contact of one body within a time limit.
// It is recomputed every sub-step and discarded after use.
type CollisionEvent struct {
	// TimeFraction is the fraction of a unit step until contact. NoImpact when Wall is WallNone.
	TimeFraction float64
	Wall         Wall
	// Body is the index of the body in the slice given to AdvanceFrame, or -1 for a standalone query.
	Body int
}

// Hit reports whether the event is an actual collision.
func (e CollisionEvent) Hit() bool {
	return e.Wall != WallNone
}

func noImpact(body int) CollisionEvent {
	return CollisionEvent{TimeFraction: NoImpact, Wall: WallNone, Body: body}
}

// EarliestWallImpact returns the first wall b's edge reaches within timeLimit.
// Only walls b is moving toward are considered, so a body flush with a wall and
// moving away from it never collides. A body already touching or past a wall it is
// moving into gets TimeFraction 0. On equal times the first of right, left, bottom,
// top wins.
func EarliestWallImpact(b *Body, a Arena, timeLimit float64) (CollisionEvent, error) {
	return earliestWallImpact(b, a, timeLimit, -1)
}

func earliestWallImpact(b *Body, a Arena, timeLimit float64, index int) (CollisionEvent, error) {
	if err := a.Validate(); err != nil {
		return CollisionEvent{}, err
	}
	if !(timeLimit > 0) {
		return CollisionEvent{}, ErrNonPositiveTimeLimit
	}

	best := noImpact(index)
	consider := func(t float64, w Wall) {
		if t < 0 {
			t = 0
		}
		if t < best.TimeFraction {
			best.TimeFraction = t
			best.Wall = w
		}
	}

	p, v, r := b.Position, b.Velocity, b.Radius
	if v.X > 0 {
		consider((a.Right-r-p.X)/v.X, WallRight)
	}
	if v.X < 0 {
		consider((a.Left+r-p.X)/v.X, WallLeft)
	}
	if v.Y > 0 {
		consider((a.Bottom-r-p.Y)/v.Y, WallBottom)
	}
	if v.Y < 0 {
		consider((a.Top+r-p.Y)/v.Y, WallTop)
	}

	if best.TimeFraction > timeLimit {
		return noImpact(index), nil
	}
	return best, nil
}
