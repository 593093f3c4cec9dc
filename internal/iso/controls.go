package iso

import "math"

// Slider is a numeric input with a range and a step. Wrapping sliders
// roll over at Max back to Min instead of clamping.
type Slider struct {
	Min, Max float64
	Step     float64
	Value    float64
	Wrap     bool
}

// Nudge moves the slider by n steps and reports whether the value changed.
func (s *Slider) Nudge(n int) bool {
	return s.Set(s.Value + float64(n)*s.Step)
}

// Set moves the slider to v, clamped or wrapped into range. NaN is read
// as Min.
func (s *Slider) Set(v float64) bool {
	if math.IsNaN(v) {
		v = s.Min
	}
	if s.Wrap {
		span := s.Max - s.Min
		if span > 0 {
			v = s.Min + math.Mod(v-s.Min, span)
			if v < s.Min {
				v += span
			}
		}
	} else {
		v = math.Max(s.Min, math.Min(s.Max, v))
	}
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Controls are the five live inputs of the viewer.
type Controls struct {
	Alpha, Beta Slider
	X, Y, Z     Slider

	initial FrameInput
}

// NewControls returns angle sliders wrapping over [0, 360) and position
// sliders clamped to [-reach, reach], starting at in.
func NewControls(in FrameInput, angleStep float64, reach int) *Controls {
	angle := func(v float64) Slider {
		s := Slider{Min: 0, Max: 360, Step: angleStep, Wrap: true}
		s.Set(v)
		return s
	}
	pos := func(v float64) Slider {
		s := Slider{Min: -float64(reach), Max: float64(reach), Step: 1}
		s.Set(v)
		return s
	}
	in = in.Sanitize()
	return &Controls{
		Alpha:   angle(in.Alpha),
		Beta:    angle(in.Beta),
		X:       pos(in.Cube.X),
		Y:       pos(in.Cube.Y),
		Z:       pos(in.Cube.Z),
		initial: in,
	}
}

// Action is one discrete input event.
type Action int

const (
	AlphaDown Action = iota
	AlphaUp
	BetaDown
	BetaUp
	XDown
	XUp
	YDown
	YUp
	ZDown
	ZUp
	Reset
)

// Apply performs a and reports whether any slider moved.
func (c *Controls) Apply(a Action) bool {
	switch a {
	case AlphaDown:
		return c.Alpha.Nudge(-1)
	case AlphaUp:
		return c.Alpha.Nudge(1)
	case BetaDown:
		return c.Beta.Nudge(-1)
	case BetaUp:
		return c.Beta.Nudge(1)
	case XDown:
		return c.X.Nudge(-1)
	case XUp:
		return c.X.Nudge(1)
	case YDown:
		return c.Y.Nudge(-1)
	case YUp:
		return c.Y.Nudge(1)
	case ZDown:
		return c.Z.Nudge(-1)
	case ZUp:
		return c.Z.Nudge(1)
	case Reset:
		in := c.initial
		changed := c.Alpha.Set(in.Alpha)
		changed = c.Beta.Set(in.Beta) || changed
		changed = c.X.Set(in.Cube.X) || changed
		changed = c.Y.Set(in.Cube.Y) || changed
		changed = c.Z.Set(in.Cube.Z) || changed
		return changed
	}
	return false
}

// Snapshot copies the current slider values into a FrameInput.
func (c *Controls) Snapshot() FrameInput {
	return FrameInput{
		Alpha: c.Alpha.Value,
		Beta:  c.Beta.Value,
		Cube:  Vec3{X: c.X.Value, Y: c.Y.Value, Z: c.Z.Value},
	}
}
