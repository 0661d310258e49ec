package kmeans

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/centroid"
	"gonum.org/v1/gonum/floats"
)

// Cluster is one group of a k-means partition.
//
// A cluster holds a centroid and the indices of its member points in the
// dataset. The centroid is generally not a dataset point itself but lies
// between the members. Membership preserves insertion order and never holds
// the same index twice.
type Cluster struct {
	ds       *Dataset
	centroid Point
	indices  []int
	members  *roaring.Bitmap
	relTol   float64
	absTol   float64
}

// NewCluster creates an empty cluster over ds with the given initial centroid.
func NewCluster(ds *Dataset, c Point) (*Cluster, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if err := checkDimension(c, ds.Dimension()); err != nil {
		return nil, err
	}

	return &Cluster{
		ds:       ds,
		centroid: c.Clone(),
		members:  roaring.New(),
		relTol:   centroid.DefaultRelTol,
		absTol:   centroid.DefaultAbsTol,
	}, nil
}

// Centroid returns a copy of the current centroid.
func (c *Cluster) Centroid() Point {
	return c.centroid.Clone()
}

// Indices returns a copy of the member indices in insertion order.
func (c *Cluster) Indices() []int {
	return slices.Clone(c.indices)
}

// Len returns the number of members.
func (c *Cluster) Len() int {
	return len(c.indices)
}

// AddIndex adds the dataset index i to the cluster.
// Adding an index that is already a member leaves the cluster unchanged.
func (c *Cluster) AddIndex(i int) error {
	if i < 0 || i >= c.ds.Size() {
		return &ErrInvalidIndex{Index: i, Size: c.ds.Size(), cause: ErrContractViolation}
	}
	c.insert(i)
	return nil
}

func (c *Cluster) insert(i int) {
	if c.members.CheckedAdd(indexKey(i)) {
		c.indices = append(c.indices, i)
	}
}

// Clear removes all members but leaves the centroid unchanged.
func (c *Cluster) Clear() {
	c.indices = c.indices[:0]
	c.members.Clear()
}

// Members returns copies of the member points, in membership order.
func (c *Cluster) Members() []Point {
	points := make([]Point, len(c.indices))
	for n, i := range c.indices {
		points[n] = c.ds.at(i).Clone()
	}
	return points
}

// Distance returns the Euclidean distance from p to the centroid.
func (c *Cluster) Distance(p Point) (float64, error) {
	if err := checkDimension(p, c.ds.Dimension()); err != nil {
		return 0, err
	}
	return c.distance(p), nil
}

func (c *Cluster) distance(p Point) float64 {
	return distance.Euclidean(p, c.centroid)
}

// Radius returns the maximum distance from any member to the centroid.
// Returns ErrEmptyCluster if the cluster has no members.
func (c *Cluster) Radius() (float64, error) {
	if len(c.indices) == 0 {
		return 0, ErrEmptyCluster
	}

	dists := make([]float64, len(c.indices))
	for n, i := range c.indices {
		dists[n] = c.distance(c.ds.at(i))
	}
	return floats.Max(dists), nil
}

// Update recomputes the centroid as the coordinate-wise mean of the members.
//
// It reports true if the centroid stayed the same within the configured
// tolerances, i.e. the previous centroid was a stable position. A cluster
// without members keeps its centroid and reports true.
func (c *Cluster) Update() bool {
	if len(c.indices) == 0 {
		return true
	}

	points := make([][]float64, len(c.indices))
	for n, i := range c.indices {
		points[n] = c.ds.at(i)
	}

	next := make(Point, len(c.centroid))
	centroid.Mean(next, points)

	prev := c.centroid
	c.centroid = next

	return centroid.AllClose(prev, next, c.relTol, c.absTol)
}

// String returns the centroid and member indices, e.g. "[0.5]:[0 1]".
func (c *Cluster) String() string {
	return fmt.Sprintf("%v:%v", []float64(c.centroid), c.indices)
}
