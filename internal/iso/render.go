package iso

import (
	"image/color"
	"math"
)

// Surface is what a frame is painted on. Coordinates passed to the fill
// and stroke calls are offset by the current transform.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	SetTransform(tx, ty float64)
	SetFillColor(c color.Color)
	FillPolygon(pts []Point2)
	StrokePolygon(pts []Point2)
}

// FrameInput is the slider state read once at the start of a frame.
type FrameInput struct {
	Alpha, Beta float64 // degrees
	Cube        Vec3    // movable cube center
}

// Sanitize replaces NaN and infinite values with zero.
func (in FrameInput) Sanitize() FrameInput {
	return FrameInput{
		Alpha: finite(in.Alpha),
		Beta:  finite(in.Beta),
		Cube: Vec3{
			X: finite(in.Cube.X),
			Y: finite(in.Cube.Y),
			Z: finite(in.Cube.Z),
		},
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// PaintedFace is a face together with its projected corners, relative to
// the surface center.
type PaintedFace struct {
	Face
	Points [4]Point2
}

// Frame records what one Render call painted, in paint order.
type Frame struct {
	Input  FrameInput
	Camera Vec3
	Faces  []PaintedFace
}

// Renderer paints a Scene back to front.
type Renderer struct {
	Scene          Scene
	Scale          float64
	CameraDistance float64
	Background     color.Color
	Wireframe      bool
}

// NewRenderer returns a renderer for the default scene.
func NewRenderer() *Renderer {
	return &Renderer{
		Scene:          DefaultScene(),
		Scale:          100,
		CameraDistance: 10,
		Background:     color.White,
	}
}

// Render redraws the whole surface for one input snapshot.
func (r *Renderer) Render(s Surface, in FrameInput) Frame {
	in = in.Sanitize()

	s.SetTransform(0, 0)
	s.Clear(r.Background)
	w, h := s.Size()
	s.SetTransform(float64(w)/2, float64(h)/2)

	view := NewView(in.Alpha, in.Beta)
	camera := view.Camera(r.CameraDistance)
	faces := SortFacesByDepth(r.Scene.Faces(in.Cube), camera)

	frame := Frame{
		Input:  in,
		Camera: camera,
		Faces:  make([]PaintedFace, 0, len(faces)),
	}
	for _, f := range faces {
		pf := PaintedFace{Face: f}
		for i, v := range f.Vertices {
			pf.Points[i] = view.Project(v, r.Scale)
		}
		s.SetFillColor(f.Color)
		if r.Wireframe {
			s.StrokePolygon(pf.Points[:])
		} else {
			s.FillPolygon(pf.Points[:])
		}
		frame.Faces = append(frame.Faces, pf)
	}
	return frame
}
