// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic random points and
// well-separated blobs with known ground-truth centers.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(100, 2)    // uniform [0, 1)
//	points := rng.GaussianPoints(100, 2)   // standard normal
//
// # Clustered Data
//
//	centers := [][]float64{{0, 0}, {10, 10}}
//	points, labels := rng.Blobs(centers, 50, 0.5)
package testutil
