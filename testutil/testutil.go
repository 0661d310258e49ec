package testutil

import (
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(NewSource(seed)),
		seed: seed,
	}
}

// NewSource returns a deterministic random source for the given seed.
// Use it to make engine seed sampling reproducible.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates random points with coordinates from a standard normal distribution.
func (r *RNG) GaussianPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// Blobs generates perCenter points around each of the given centers, adding
// Gaussian noise scaled by spread. Points are interleaved (center 0, 1, ..., 0, 1, ...)
// and labels[i] is the index of the center point i was drawn around.
func (r *RNG) Blobs(centers [][]float64, perCenter int, spread float64) (points [][]float64, labels []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := len(centers) * perCenter
	points = make([][]float64, num)
	labels = make([]int, num)

	for i := range num {
		label := i % len(centers)
		center := centers[label]

		p := make([]float64, len(center))
		for j := range p {
			p[j] = center[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
		labels[i] = label
	}

	return points, labels
}

// Line returns the one-dimensional points 0, 1, ..., n-1.
func Line(n int) [][]float64 {
	points := make([][]float64, n)
	for i := range n {
		points[i] = []float64{float64(i)}
	}
	return points
}
