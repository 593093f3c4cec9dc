package iso

import (
	"image/color"
	"math"
)

// Side names one face of a cube.
type Side int

const (
	Front Side = iota
	Back
	Left
	Right
	Top
	Bottom
	numSides
)

var sideNames = [numSides]string{"front", "back", "left", "right", "top", "bottom"}

func (s Side) String() string {
	if s < 0 || s >= numSides {
		return "side?"
	}
	return sideNames[s]
}

// Palette holds one color per side.
type Palette [numSides]color.RGBA

// DefaultPalette shades the sides in grays, darkest on the bottom.
var DefaultPalette = Palette{
	Front:  {0x55, 0x55, 0x55, 0xff},
	Back:   {0x77, 0x77, 0x77, 0xff},
	Left:   {0x99, 0x99, 0x99, 0xff},
	Right:  {0xaa, 0xaa, 0xaa, 0xff},
	Top:    {0xbb, 0xbb, 0xbb, 0xff},
	Bottom: {0x33, 0x33, 0x33, 0xff},
}

// Face is one side of a cube.
type Face struct {
	Vertices [4]Vec3
	Side     Side
	Cube     int // index of the owning cube in the scene
	Color    color.RGBA
}

// Centroid returns the mean of the four vertices.
func (f Face) Centroid() Vec3 {
	var c Vec3
	for _, v := range f.Vertices {
		c = c.Add(v)
	}
	return c.Scale(0.25)
}

// Unit offsets per side. Each side keeps one axis at ±1 and lists its
// corners clockwise as seen from outside the cube.
var faceTemplates = [numSides][4]Vec3{
	Front: {
		{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1},
	},
	Back: {
		{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1},
	},
	Left: {
		{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1},
	},
	Right: {
		{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1},
	},
	Top: {
		{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1},
	},
	Bottom: {
		{1, -1, -1}, {1, -1, 1}, {-1, -1, 1}, {-1, -1, -1},
	},
}

// BuildFaces expands every center into six faces, in side order.
func BuildFaces(centers []Vec3, halfSize float64, palette Palette) []Face {
	faces := make([]Face, 0, len(centers)*int(numSides))
	for i, c := range centers {
		for s, tmpl := range faceTemplates {
			f := Face{Side: Side(s), Cube: i, Color: palette[s]}
			for k, off := range tmpl {
				f.Vertices[k] = c.Add(off.Scale(halfSize))
			}
			faces = append(faces, f)
		}
	}
	return faces
}

// Lattice is the fixed part of the default scene: three arms of cubes
// along each axis, all starting at the origin.
var Lattice = []Vec3{
	{0, 0, 0}, {0, 0, 1}, {0, 0, 2},
	{0, 0, 0}, {0, 1, 0}, {0, 2, 0},
	{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
}

// Scene is a list of fixed cube centers followed by one movable cube.
type Scene struct {
	Fixed    []Vec3
	HalfSize float64
	Palette  Palette
}

// DefaultScene returns the lattice with cubes of half-size 0.2.
func DefaultScene() Scene {
	return Scene{
		Fixed:    append([]Vec3(nil), Lattice...),
		HalfSize: 0.2,
		Palette:  DefaultPalette,
	}
}

// Centers returns the fixed centers with the movable one appended last.
func (s Scene) Centers(movable Vec3) []Vec3 {
	centers := make([]Vec3, 0, len(s.Fixed)+1)
	centers = append(centers, s.Fixed...)
	return append(centers, movable)
}

// Movable returns the scene index of the movable cube.
func (s Scene) Movable() int {
	return len(s.Fixed)
}

// Faces builds this frame's faces.
func (s Scene) Faces(movable Vec3) []Face {
	return BuildFaces(s.Centers(movable), s.HalfSize, s.Palette)
}

// Radius bounds the distance from the origin to any vertex of the scene.
func (s Scene) Radius(movable Vec3) float64 {
	var r float64
	for _, c := range s.Centers(movable) {
		r = math.Max(r, c.Distance(Vec3{}))
	}
	return r + s.HalfSize*math.Sqrt(3)
}
