package kmeans

import "slices"

// Point is a fixed-length coordinate tuple.
//
// Points stored in a Dataset or used as a Cluster centroid are never shared
// with callers: values are copied on the way in and on the way out.
type Point []float64

// Dim returns the number of coordinates of p.
func (p Point) Dim() int {
	return len(p)
}

// Clone returns a copy of p.
func (p Point) Clone() Point {
	return slices.Clone(p)
}

func checkDimension(p Point, dim int) error {
	if len(p) != dim {
		return &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
	}
	return nil
}
