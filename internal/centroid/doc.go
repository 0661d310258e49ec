// Package centroid implements the vector kernels behind k-means clustering.
//
// Used internally by kmeans.Cluster and kmeans.Engine to average member
// points, detect stable centroids, find the nearest centroid and sample
// initial seeds.
package centroid
