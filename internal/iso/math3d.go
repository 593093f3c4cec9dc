package iso

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis convention shared by the projection and the camera derivation.
// Model X is screen right, model Y is screen up and model Z is depth,
// growing away from the viewer. Alpha turns the scene about the Y axis,
// beta tilts it about the X axis, and alpha is always applied first:
//
//	M = Projection ∘ RotationBeta ∘ RotationAlpha
const (
	AlphaAxis = "Y"
	BetaAxis  = "X"
)

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Point2 is a projected point in screen units.
type Point2 struct {
	X, Y float64
}

func (v Vec3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(m mgl64.Vec3) Vec3 {
	return Vec3{X: m[0], Y: m[1], Z: m[2]}
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return fromMgl(v.mgl().Add(w.mgl()))
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return fromMgl(v.mgl().Mul(s))
}

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) float64 {
	return v.mgl().Sub(w.mgl()).Len()
}

// RotateX rotates the vector around the X axis
func (v Vec3) RotateX(angle float64) Vec3 {
	return v.rotateX(math.Sin(angle), math.Cos(angle))
}

// RotateY rotates the vector around the Y axis
func (v Vec3) RotateY(angle float64) Vec3 {
	return v.rotateY(math.Sin(angle), math.Cos(angle))
}

func (v Vec3) rotateX(sin, cos float64) Vec3 {
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

func (v Vec3) rotateY(sin, cos float64) Vec3 {
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// View is the rotation for one frame. Sines and cosines are computed once
// so that every projection and the camera agree exactly.
type View struct {
	sinA, cosA float64
	sinB, cosB float64
}

// NewView builds the view rotation from two angles in degrees.
func NewView(alphaDeg, betaDeg float64) View {
	a := mgl64.DegToRad(alphaDeg)
	b := mgl64.DegToRad(betaDeg)
	return View{
		sinA: math.Sin(a), cosA: math.Cos(a),
		sinB: math.Sin(b), cosB: math.Cos(b),
	}
}

// Rotate carries a model space point into view space.
func (v View) Rotate(p Vec3) Vec3 {
	return p.rotateY(v.sinA, v.cosA).rotateX(v.sinB, v.cosB)
}

// Unrotate carries a view space point back into model space.
func (v View) Unrotate(p Vec3) Vec3 {
	return p.rotateX(-v.sinB, v.cosB).rotateY(-v.sinA, v.cosA)
}

// Project rotates p, drops the depth axis and scales the rest. Screen Y
// grows downward, so model Y is negated.
func (v View) Project(p Vec3, scale float64) Point2 {
	r := v.Rotate(p)
	return Point2{X: r.X * scale, Y: -r.Y * scale}
}

// Camera returns the viewer position in model space. The viewer sits at
// distance on the negative depth axis of view space.
func (v View) Camera(distance float64) Vec3 {
	return v.Unrotate(Vec3{Z: -distance})
}

// Project maps a model space point to screen units for the given angles.
func Project(alphaDeg, betaDeg float64, p Vec3, scale float64) Point2 {
	return NewView(alphaDeg, betaDeg).Project(p, scale)
}

// CameraPosition returns the sort reference point for the given angles.
func CameraPosition(alphaDeg, betaDeg, distance float64) Vec3 {
	return NewView(alphaDeg, betaDeg).Camera(distance)
}
