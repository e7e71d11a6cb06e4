package physics

import "github.com/jinzhu/copier"

// Body is a moving circle: center position, velocity per unit time step, and radius.
// A zero radius makes it a point. The simulation driver owns it and mutates it once per frame.
// Radius must be >= 0 and no larger than half the smaller arena side; neither is checked.
type Body struct {
	Position Vec2
	Velocity Vec2
	Radius   float64
}

// NewBody returns a body at pos moving with vel.
func NewBody(pos, vel Vec2, radius float64) *Body {
	return &Body{
		Position: pos,
		Velocity: vel,
		Radius:   radius,
	}
}

// advance moves the body along its velocity for a fraction t of a time step.
func (b *Body) advance(t float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(t))
}

// reflect negates the velocity component perpendicular to w.
func (b *Body) reflect(w Wall) {
	switch w {
	case WallLeft, WallRight:
		b.Velocity.X = -b.Velocity.X
	case WallTop, WallBottom:
		b.Velocity.Y = -b.Velocity.Y
	}
}

// CloneBodies returns a deep copy of bodies; the returned pointers share nothing with the input.
func CloneBodies(bodies []*Body) ([]*Body, error) {
	out := make([]*Body, 0, len(bodies))
	if len(bodies) == 0 {
		return out, nil
	}
	if err := copier.CopyWithOption(&out, &bodies, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}
