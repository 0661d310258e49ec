// Package distance provides point distance calculations for k-means clustering.
//
// The calculations are backed by gonum's floats package.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
package distance
