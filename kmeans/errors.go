package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRowCount is returned when the row count is negative.
	ErrInvalidRowCount = errors.New("row count must not be negative")

	// ErrInvalidColumnCount is returned when the column count is not positive.
	ErrInvalidColumnCount = errors.New("column count must be positive")

	// ErrInvalidClusterCount is returned when the cluster count is not positive.
	ErrInvalidClusterCount = errors.New("cluster count must be positive")

	// ErrColumnOutOfRange is returned by Step when the data matrix has columns
	// the model was not sized for.
	ErrColumnOutOfRange = errors.New("data column out of range")

	// ErrClusterOutOfRange is returned for cluster indices outside [0, ClusterCount).
	ErrClusterOutOfRange = errors.New("cluster index out of range")
)

// RowCountMismatchError indicates a data matrix whose row count differs from the model.
type RowCountMismatchError struct {
	Expected int
	Actual   int
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("row count mismatch: expected %d, got %d", e.Expected, e.Actual)
}
