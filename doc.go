// Package kmeans provides an embeddable k-means clustering engine for Go.
//
// A Dataset holds fixed-dimension points, a Cluster holds a centroid and the
// indices of its members, and an Engine drives Lloyd's algorithm: assign every
// point to the nearest centroid, recompute every centroid as the mean of its
// members, and repeat until no centroid moves.
//
// # Quick Start
//
//	ds, _ := kmeans.NewDataset(2,
//	    kmeans.Point{0, 0}, kmeans.Point{0, 1},
//	    kmeans.Point{10, 10}, kmeans.Point{10, 11},
//	)
//	eng, _ := kmeans.NewEngine(ds, 2)
//	stats, _ := eng.Run(ctx, 100)
//	for _, c := range eng.Clusters() {
//	    fmt.Println(c.Centroid(), c.Indices())
//	}
//
// # Seeding
//
// By default the initial centroids are k distinct dataset points drawn
// uniformly at random. Use WithSeeds to choose them explicitly and WithSource
// to make random seeding reproducible:
//
//	eng, _ := kmeans.NewEngine(ds, 2, kmeans.WithSeeds(0, 2))
//	eng, _ := kmeans.NewEngine(ds, 2, kmeans.WithSource(rand.NewPCG(1, 2)))
//
// # Convergence
//
// Step reports true once no centroid moved by more than the configured
// tolerance (WithTolerance, default relative 1e-5 / absolute 1e-8). Run stops
// at the first converged step or after maxSteps steps, whichever comes first.
// The engine remains usable afterwards.
//
// # Errors
//
// Precondition failures wrap ErrContractViolation; use errors.Is to test for
// it. Reading past the end of a Dataset wraps ErrIndexOutOfRange and asking an
// empty cluster for its radius returns ErrEmptyCluster.
//
// # Concurrency
//
// Dataset, Cluster and Engine are not safe for concurrent use. Confine an
// engine and its dataset to one goroutine or synchronize externally.
package kmeans
