package kmeans

import (
	"fmt"
	"iter"
	"math"
)

// maxDatasetSize bounds the number of points so that every index fits the
// uint32 keys of cluster membership bitmaps.
var maxDatasetSize = min(math.MaxInt, math.MaxUint32)

// Dataset is an ordered, append-only collection of points sharing one dimension.
//
// A Dataset is not safe for concurrent use. It may be shared by several
// engines as long as all of them run on the same goroutine.
type Dataset struct {
	dim    int
	points []Point
}

// NewDataset creates a dataset of the given dimension.
//
// The optional contents are copied. Every point must have exactly dim coordinates.
func NewDataset(dim int, contents ...Point) (*Dataset, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	if len(contents) > maxDatasetSize {
		return nil, fmt.Errorf("%w: %d points", ErrDatasetFull, len(contents))
	}

	points := make([]Point, 0, len(contents))
	for _, p := range contents {
		if err := checkDimension(p, dim); err != nil {
			return nil, err
		}
		points = append(points, p.Clone())
	}

	return &Dataset{
		dim:    dim,
		points: points,
	}, nil
}

// Dimension returns the point dimension of the dataset.
func (ds *Dataset) Dimension() int {
	return ds.dim
}

// Size returns the number of points in the dataset.
func (ds *Dataset) Size() int {
	return len(ds.points)
}

// PointAt returns a copy of the point at index i.
func (ds *Dataset) PointAt(i int) (Point, error) {
	if i < 0 || i >= len(ds.points) {
		return nil, &ErrInvalidIndex{Index: i, Size: len(ds.points), cause: ErrIndexOutOfRange}
	}
	return ds.points[i].Clone(), nil
}

// Append adds a copy of p to the end of the dataset.
func (ds *Dataset) Append(p Point) error {
	if err := checkDimension(p, ds.dim); err != nil {
		return err
	}
	if len(ds.points) >= maxDatasetSize {
		return fmt.Errorf("%w: %d points", ErrDatasetFull, len(ds.points))
	}
	ds.points = append(ds.points, p.Clone())
	return nil
}

// All returns an iterator over the dataset in index order.
// Yielded points are copies.
func (ds *Dataset) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, p := range ds.points {
			if !yield(i, p.Clone()) {
				return
			}
		}
	}
}

// at returns the stored point without copying. Callers must not modify it.
func (ds *Dataset) at(i int) Point {
	return ds.points[i]
}

// indexKey returns the membership key of dataset index i.
func indexKey(i int) uint32 {
	return uint32(i) //nolint:gosec // 0 <= i < maxDatasetSize
}
