package iso

import (
	"image/color"
	"math"
	"testing"
)

// recorder is a Surface that logs every call.
type recorder struct {
	w, h    int
	ops     []string
	fills   [][]Point2
	strokes [][]Point2
	colors  []color.Color
	tx, ty  float64
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Clear(color.Color) { r.ops = append(r.ops, "clear") }

func (r *recorder) SetTransform(tx, ty float64) {
	r.tx, r.ty = tx, ty
	r.ops = append(r.ops, "transform")
}

func (r *recorder) SetFillColor(c color.Color) { r.colors = append(r.colors, c) }

func (r *recorder) FillPolygon(pts []Point2) {
	r.fills = append(r.fills, append([]Point2(nil), pts...))
	r.ops = append(r.ops, "fill")
}

func (r *recorder) StrokePolygon(pts []Point2) {
	r.strokes = append(r.strokes, append([]Point2(nil), pts...))
	r.ops = append(r.ops, "stroke")
}

func TestRender(t *testing.T) {
	r := NewRenderer()
	s := &recorder{w: 400, h: 300}
	frame := r.Render(s, FrameInput{})

	if n := len(frame.Faces); n != 60 {
		t.Fatalf("len(Frame.Faces)\nhave %d\nwant 60", n)
	}
	if n := len(s.fills); n != 60 {
		t.Fatalf("FillPolygon calls\nhave %d\nwant 60", n)
	}
	if len(s.strokes) != 0 {
		t.Fatalf("StrokePolygon calls\nhave %d\nwant 0", len(s.strokes))
	}
	if len(s.ops) < 3 || s.ops[0] != "transform" || s.ops[1] != "clear" || s.ops[2] != "transform" {
		t.Fatalf("first ops\nhave %v\nwant [transform clear transform ...]", s.ops[:min(3, len(s.ops))])
	}
	if s.tx != 200 || s.ty != 150 {
		t.Fatalf("origin\nhave (%v, %v)\nwant (200, 150)", s.tx, s.ty)
	}
	if frame.Camera != (Vec3{0, 0, -10}) {
		t.Fatalf("Frame.Camera\nhave %v\nwant {0 0 -10}", frame.Camera)
	}

	checkPainted(t, frame)
	for i, pf := range frame.Faces {
		if s.colors[i] != pf.Color {
			t.Fatalf("fill color %d\nhave %v\nwant %v", i, s.colors[i], pf.Color)
		}
		for k, p := range s.fills[i] {
			if p != pf.Points[k] {
				t.Fatalf("fill %d point %d\nhave %v\nwant %v", i, k, p, pf.Points[k])
			}
		}
	}
}

func checkPainted(t *testing.T, frame Frame) {
	t.Helper()
	faces := make([]Face, len(frame.Faces))
	for i, pf := range frame.Faces {
		faces[i] = pf.Face
	}
	checkDescending(t, faces, frame.Camera)
}

func TestRenderFarCubeFirst(t *testing.T) {
	r := NewRenderer()
	frame := r.Render(&recorder{w: 100, h: 100}, FrameInput{})
	centers := r.Scene.Centers(frame.Input.Cube)
	lastFar, firstNear := -1, len(frame.Faces)
	for i, pf := range frame.Faces {
		switch centers[pf.Cube] {
		case Vec3{0, 0, 2}:
			lastFar = i
		case Vec3{}:
			firstNear = min(firstNear, i)
		}
	}
	if lastFar < 0 || lastFar >= firstNear {
		t.Fatalf("cube (0,0,2) last painted at %d, cube (0,0,0) first painted at %d", lastFar, firstNear)
	}
}

func TestRenderMovableOnly(t *testing.T) {
	r := NewRenderer()
	in := FrameInput{Alpha: 30, Beta: 320}
	before := r.Render(&recorder{w: 100, h: 100}, in)
	in.Cube = Vec3{2, -1, 3}
	after := r.Render(&recorder{w: 100, h: 100}, in)

	type key struct {
		cube int
		side Side
	}
	index := func(f Frame) map[key][4]Point2 {
		m := make(map[key][4]Point2, len(f.Faces))
		for _, pf := range f.Faces {
			m[key{pf.Cube, pf.Side}] = pf.Points
		}
		return m
	}
	b, a := index(before), index(after)
	movable := r.Scene.Movable()

	same, changed := 0, 0
	for k, pts := range b {
		if k.cube == movable {
			if a[k] != pts {
				changed++
			}
			continue
		}
		if a[k] != pts {
			t.Fatalf("cube %d %v moved\nhave %v\nwant %v", k.cube, k.side, a[k], pts)
		}
		same++
	}
	if same != 54 || changed != 6 {
		t.Fatalf("faces unchanged/changed\nhave %d/%d\nwant 54/6", same, changed)
	}
}

func TestRenderSanitizes(t *testing.T) {
	r := NewRenderer()
	nan := math.NaN()
	frame := r.Render(&recorder{w: 100, h: 100}, FrameInput{
		Alpha: nan,
		Beta:  math.Inf(1),
		Cube:  Vec3{nan, math.Inf(-1), 1},
	})
	if frame.Input != (FrameInput{Cube: Vec3{0, 0, 1}}) {
		t.Fatalf("Frame.Input\nhave %+v\nwant {Alpha:0 Beta:0 Cube:{X:0 Y:0 Z:1}}", frame.Input)
	}
	for _, pf := range frame.Faces {
		for _, p := range pf.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("%v of cube %d projected to %v", pf.Side, pf.Cube, p)
			}
		}
	}
}

func TestRenderWireframe(t *testing.T) {
	r := NewRenderer()
	r.Wireframe = true
	s := &recorder{w: 100, h: 100}
	r.Render(s, FrameInput{Alpha: 45, Beta: 330})
	if len(s.fills) != 0 || len(s.strokes) != 60 {
		t.Fatalf("fills/strokes\nhave %d/%d\nwant 0/60", len(s.fills), len(s.strokes))
	}
}

func TestRenderCanvas(t *testing.T) {
	r := NewRenderer()
	c := NewCanvas(200, 200)
	r.Render(c, FrameInput{})

	// Head on, the nearest faces of the origin cubes cover the center.
	if got := c.Image().RGBAAt(100, 100); got != DefaultPalette[Front] {
		t.Fatalf("center pixel\nhave %v\nwant %v", got, DefaultPalette[Front])
	}
	if got := c.Image().RGBAAt(0, 0); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("corner pixel\nhave %v\nwant white", got)
	}
}

func TestRenderFarOffCube(t *testing.T) {
	r := NewRenderer()
	c := NewCanvas(200, 200)
	frame := r.Render(c, FrameInput{Cube: Vec3{1e200, -1e200, 0}})
	if n := len(frame.Faces); n != 60 {
		t.Fatalf("len(Frame.Faces)\nhave %d\nwant 60", n)
	}
	if got := c.Image().RGBAAt(100, 100); got != DefaultPalette[Front] {
		t.Fatalf("center pixel\nhave %v\nwant %v", got, DefaultPalette[Front])
	}
}
