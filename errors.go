package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation is returned when a precondition of an operation is
	// violated (wrong shape, out-of-range index, invalid seed list, ...).
	ErrContractViolation = errors.New("contract violation")

	// ErrIndexOutOfRange is returned when reading a dataset position beyond its bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyCluster is returned when a statistic is requested from a cluster without members.
	ErrEmptyCluster = errors.New("empty cluster")

	// ErrInvalidK is returned when k is not in (0, dataset size].
	ErrInvalidK = fmt.Errorf("%w: k must be positive and not exceed the dataset size", ErrContractViolation)

	// ErrInvalidSeeds is returned when a seed list is not k distinct dataset indices.
	ErrInvalidSeeds = fmt.Errorf("%w: invalid seeds", ErrContractViolation)

	// ErrDatasetFull is returned when a dataset would exceed its maximum size.
	ErrDatasetFull = fmt.Errorf("%w: dataset is full", ErrContractViolation)

	// ErrNilDataset is returned when a nil dataset is passed to a constructor.
	ErrNilDataset = fmt.Errorf("%w: dataset is nil", ErrContractViolation)
)

// ErrDimensionMismatch indicates a point/dataset dimensionality mismatch.
//
// It unwraps to ErrContractViolation.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrContractViolation }

// ErrInvalidDimension indicates an invalid configured dimension.
//
// It unwraps to ErrContractViolation.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return ErrContractViolation }

// ErrInvalidIndex indicates an index outside [0, Size).
//
// Reads unwrap to ErrIndexOutOfRange, membership writes to ErrContractViolation.
type ErrInvalidIndex struct {
	Index int
	Size  int
	cause error
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("invalid index %d for size %d", e.Index, e.Size)
}

func (e *ErrInvalidIndex) Unwrap() error { return e.cause }
