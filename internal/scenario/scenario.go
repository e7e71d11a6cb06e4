// Package scenario loads the initial scene of a simulation from YAML.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"ballworld/internal/physics"
)

// Size is the arena size a scenario was authored for. Front ends may resize it at run time.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BodySpec is one body's initial state.
type BodySpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color,omitempty"`
}

// Scenario describes an arena, the bodies in it, and how frames are resolved.
type Scenario struct {
	Name       string     `yaml:"name"`
	Arena      Size       `yaml:"arena"`
	FrameTime  float64    `yaml:"frame_time"`
	Epsilon    float64    `yaml:"epsilon,omitempty"`
	MinSubStep float64    `yaml:"min_sub_step,omitempty"`
	Bodies     []BodySpec `yaml:"bodies"`
}

// Default returns the built-in scene: a slow ball, a quick diagonal one, and one wedged in a corner.
func Default() *Scenario {
	return &Scenario{
		Name:      "default",
		Arena:     Size{Width: 100, Height: 100},
		FrameTime: 1.0,
		Bodies: []BodySpec{
			{X: 50, Y: 50, VX: 6, VY: 0, Radius: 5, Color: "#e63946"},
			{X: 30, Y: 70, VX: 20, VY: -13, Radius: 3, Color: "#2a9d8f"},
			{X: 4, Y: 4, VX: -1.5, VY: -1, Radius: 4, Color: "#f4a261"},
		},
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates YAML scenario data. Unknown keys are rejected.
// A missing frame_time defaults to 1.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if s.FrameTime == 0 {
		s.FrameTime = 1.0
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// WithBodies returns a copy of s whose bodies start from the given states. Colors stay
// with their index. Used to save a running simulation as a new scenario.
func (s *Scenario) WithBodies(bodies []physics.Body) *Scenario {
	out := *s
	out.Bodies = make([]BodySpec, len(bodies))
	for i, b := range bodies {
		out.Bodies[i] = BodySpec{
			X: b.Position.X, Y: b.Position.Y,
			VX: b.Velocity.X, VY: b.Velocity.Y,
			Radius: b.Radius,
		}
		if i < len(s.Bodies) {
			out.Bodies[i].Color = s.Bodies[i].Color
		}
	}
	return &out
}

// Validate checks the arena, frame time and every body. Bodies must have a
// non-negative radius that fits the arena and must start inside it.
func (s *Scenario) Validate() error {
	arena := s.PhysicsArena()
	if err := arena.Validate(); err != nil {
		return err
	}
	if !(s.FrameTime > 0) {
		return fmt.Errorf("frame_time must be positive, got %g", s.FrameTime)
	}
	if s.Epsilon < 0 || s.MinSubStep < 0 {
		return errors.New("epsilon and min_sub_step must not be negative")
	}
	eps := s.Epsilon
	if eps == 0 {
		eps = physics.DefaultEpsilon
	}
	if s.MinSubStep >= eps {
		return fmt.Errorf("min_sub_step %g must be below epsilon %g", s.MinSubStep, eps)
	}
	maxRadius := min(arena.Width(), arena.Height()) / 2
	var errs []error
	for i, b := range s.Bodies {
		switch {
		case b.Radius < 0:
			errs = append(errs, fmt.Errorf("body %d: negative radius %g", i, b.Radius))
		case b.Radius > maxRadius:
			errs = append(errs, fmt.Errorf("body %d: radius %g does not fit arena", i, b.Radius))
		case !arena.Contains(s.body(i), 0):
			errs = append(errs, fmt.Errorf("body %d: starts outside arena at (%g, %g)", i, b.X, b.Y))
		}
		if b.Color != "" {
			if _, err := ParseColor(b.Color); err != nil {
				errs = append(errs, fmt.Errorf("body %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// PhysicsArena returns the arena the scenario was authored for.
func (s *Scenario) PhysicsArena() physics.Arena {
	return physics.NewArena(s.Arena.Width, s.Arena.Height)
}

func (s *Scenario) body(i int) *physics.Body {
	b := s.Bodies[i]
	return physics.NewBody(physics.V(b.X, b.Y), physics.V(b.VX, b.VY), b.Radius)
}

// NewBodies returns fresh bodies in scenario order.
func (s *Scenario) NewBodies() []*physics.Body {
	out := make([]*physics.Body, len(s.Bodies))
	for i := range s.Bodies {
		out[i] = s.body(i)
	}
	return out
}

// Options returns the resolver tuning set in the scenario.
func (s *Scenario) Options() []physics.Option {
	var opts []physics.Option
	if s.Epsilon > 0 {
		opts = append(opts, physics.WithEpsilon(s.Epsilon))
	}
	if s.MinSubStep > 0 {
		opts = append(opts, physics.WithMinSubStep(s.MinSubStep))
	}
	return opts
}

// NewWorld builds a world holding the scenario's bodies. extra options apply after the scenario's own.
func (s *Scenario) NewWorld(extra ...physics.Option) *physics.World {
	w := physics.NewWorld(append(s.Options(), extra...)...)
	for _, b := range s.NewBodies() {
		w.AddBody(b)
	}
	return w
}

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// DefaultColor is used for bodies without a color.
var DefaultColor = Color{R: 0xee, G: 0xee, B: 0xee}

// ParseColor parses "#rrggbb".
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// BodyColor returns the color of body i, or DefaultColor.
func (s *Scenario) BodyColor(i int) Color {
	if i < 0 || i >= len(s.Bodies) || s.Bodies[i].Color == "" {
		return DefaultColor
	}
	c, err := ParseColor(s.Bodies[i].Color)
	if err != nil {
		return DefaultColor
	}
	return c
}
