package iso

import (
	"cmp"
	"slices"
)

// SortFacesByDepth returns the faces ordered farthest first from camera,
// measured from each face's centroid. Ties keep their input order. The
// input slice is left as is.
func SortFacesByDepth(faces []Face, camera Vec3) []Face {
	type keyed struct {
		face Face
		dist float64
	}
	ks := make([]keyed, len(faces))
	for i, f := range faces {
		ks[i] = keyed{face: f, dist: f.Centroid().Distance(camera)}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return cmp.Compare(b.dist, a.dist)
	})

	sorted := make([]Face, len(ks))
	for i, k := range ks {
		sorted[i] = k.face
	}
	return sorted
}
