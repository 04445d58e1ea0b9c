package simclust

import (
	"errors"
	"fmt"

	"github.com/hupe1980/simclust/csr"
	"github.com/hupe1980/simclust/kmeans"
)

var (
	// ErrInvalidClusterCount is returned when the cluster count is not positive.
	ErrInvalidClusterCount = errors.New("cluster count must be positive")

	// ErrInvalidDimension is returned when the data matrix has no columns.
	ErrInvalidDimension = errors.New("data matrix has no columns")

	// ErrInvalidMaxSteps is returned when Fit is called with a non-positive step limit.
	ErrInvalidMaxSteps = errors.New("max steps must be positive")

	// ErrIndexOutOfRange is returned for row or cluster indices past the end.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnassigned is returned by Cluster for rows without a cluster.
	ErrUnassigned = errors.New("row is not assigned to a cluster")
)

// ErrRowCountMismatch indicates that the data matrix changed shape after the
// Clusterer was created.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrRowCountMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrRowCountMismatch) Error() string {
	return fmt.Sprintf("row count mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrRowCountMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Index unification.
	if errors.Is(err, csr.ErrRowOutOfRange) || errors.Is(err, kmeans.ErrClusterOutOfRange) {
		return fmt.Errorf("%w: %w", ErrIndexOutOfRange, err)
	}

	// Shape and argument normalization.
	var rm *kmeans.RowCountMismatchError
	if errors.As(err, &rm) {
		return &ErrRowCountMismatch{Expected: rm.Expected, Actual: rm.Actual, cause: err}
	}
	if errors.Is(err, kmeans.ErrInvalidClusterCount) {
		return fmt.Errorf("%w: %w", ErrInvalidClusterCount, err)
	}
	if errors.Is(err, kmeans.ErrInvalidColumnCount) {
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}

	return err
}
