package centroid

import (
	"math"
	"math/rand/v2"

	"github.com/hupe1980/kmeans/distance"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

const (
	// DefaultRelTol is the default relative tolerance of the stability check.
	DefaultRelTol = 1e-5
	// DefaultAbsTol is the default absolute tolerance of the stability check.
	DefaultAbsTol = 1e-8
)

// Mean writes the coordinate-wise arithmetic mean of points into dst.
// All points must have len(dst) coordinates. Mean reports false and leaves
// dst untouched when points is empty.
func Mean(dst []float64, points [][]float64) bool {
	if len(points) == 0 {
		return false
	}

	for i := range dst {
		dst[i] = 0
	}
	for _, p := range points {
		floats.Add(dst, p)
	}
	floats.Scale(1/float64(len(points)), dst)

	return true
}

// AllClose reports whether b is element-wise equal to a within the given
// tolerances. Each coordinate passes when |a-b| <= absTol + relTol*|b|, so b
// is the reference value. NaN never passes; equal infinities do.
func AllClose(a, b []float64, relTol, absTol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if !(math.Abs(a[i]-b[i]) <= absTol+relTol*math.Abs(b[i])) {
			return false
		}
	}
	return true
}

// Nearest returns the index of the centroid closest to p under dist.
// Ties are broken in favor of the lowest index. Returns -1 if there are no centroids.
func Nearest(p []float64, centroids [][]float64, dist distance.Func) int {
	if len(centroids) == 0 {
		return -1
	}

	dists := make([]float64, len(centroids))
	for j, c := range centroids {
		dists[j] = dist(p, c)
	}

	return floats.MinIdx(dists)
}

// Sample draws k distinct indices uniformly at random from [0, n) and returns
// them in draw order. A nil src uses the process-wide generator.
// Returns nil when k is not in (0, n].
func Sample(n, k int, src rand.Source) []int {
	if k <= 0 || k > n {
		return nil
	}
	idxs := make([]int, k)
	sampleuv.WithoutReplacement(idxs, n, src)
	return idxs
}
