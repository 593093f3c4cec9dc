package iso

import (
	"math"
	"testing"
)

func TestSliderClamp(t *testing.T) {
	s := Slider{Min: -3, Max: 3, Step: 1}
	for _, x := range [...]struct {
		n       int
		want    float64
		changed bool
	}{
		{1, 1, true},
		{2, 3, true},
		{1, 3, false},
		{-7, -3, true},
		{-1, -3, false},
		{4, 1, true},
	} {
		if changed := s.Nudge(x.n); changed != x.changed || s.Value != x.want {
			t.Fatalf("Nudge(%d)\nhave %v, %v\nwant %v, %v", x.n, s.Value, changed, x.want, x.changed)
		}
	}
	if s.Set(math.NaN()); s.Value != -3 {
		t.Fatalf("Set(NaN)\nhave %v\nwant -3", s.Value)
	}
}

func TestSliderWrap(t *testing.T) {
	s := Slider{Min: 0, Max: 360, Step: 5, Wrap: true}
	for _, x := range [...]struct {
		v, want float64
	}{
		{355, 355},
		{360, 0},
		{370, 10},
		{-5, 355},
		{-725, 355},
		{720, 0},
	} {
		s.Set(x.v)
		if s.Value != x.want {
			t.Fatalf("Set(%v)\nhave %v\nwant %v", x.v, s.Value, x.want)
		}
	}
	s.Set(355)
	if s.Nudge(1); s.Value != 0 {
		t.Fatalf("Nudge past Max\nhave %v\nwant 0", s.Value)
	}
	if s.Nudge(-1); s.Value != 355 {
		t.Fatalf("Nudge below Min\nhave %v\nwant 355", s.Value)
	}
}

func TestControls(t *testing.T) {
	start := FrameInput{Alpha: 45, Beta: 330, Cube: Vec3{1, 0, -1}}
	c := NewControls(start, 5, 2)
	if in := c.Snapshot(); in != start {
		t.Fatalf("Snapshot\nhave %+v\nwant %+v", in, start)
	}

	snap := c.Snapshot()
	for _, a := range []Action{AlphaUp, BetaDown, XUp, YDown, ZDown} {
		if !c.Apply(a) {
			t.Fatalf("Apply(%d) reported no change", a)
		}
	}
	if snap != start {
		t.Fatal("Snapshot changed after Apply")
	}
	want := FrameInput{Alpha: 50, Beta: 325, Cube: Vec3{2, -1, -2}}
	if in := c.Snapshot(); in != want {
		t.Fatalf("Snapshot\nhave %+v\nwant %+v", in, want)
	}

	// Position sliders stop at the reach.
	if c.Apply(XUp) || c.Apply(ZDown) {
		t.Fatal("Apply moved a slider past its reach")
	}

	if !c.Apply(Reset) {
		t.Fatal("Apply(Reset) reported no change")
	}
	if in := c.Snapshot(); in != start {
		t.Fatalf("Snapshot after Reset\nhave %+v\nwant %+v", in, start)
	}
	if c.Apply(Reset) {
		t.Fatal("second Apply(Reset) reported a change")
	}
	if c.Apply(Action(99)) {
		t.Fatal("unknown action reported a change")
	}
}

func TestControlsClampStart(t *testing.T) {
	c := NewControls(FrameInput{Alpha: -90, Beta: math.NaN(), Cube: Vec3{9, -9, 0}}, 5, 3)
	want := FrameInput{Alpha: 270, Beta: 0, Cube: Vec3{3, -3, 0}}
	if in := c.Snapshot(); in != want {
		t.Fatalf("Snapshot\nhave %+v\nwant %+v", in, want)
	}
}
