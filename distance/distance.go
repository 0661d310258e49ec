package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Euclidean calculates the Euclidean (L2) distance between two points.
// Assumes points are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
