package csr

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOpenRow is returned by Append when no row has been started.
	ErrNoOpenRow = errors.New("no open row")

	// ErrInvalidColumn is returned for negative columns, columns above MaxColumn,
	// or columns beyond the configured column count.
	ErrInvalidColumn = errors.New("invalid column")

	// ErrUnsortedColumn is returned when a column is smaller than the previous column of the row.
	ErrUnsortedColumn = errors.New("columns must be appended in increasing order")

	// ErrDuplicateColumn is returned when a column is appended twice to the same row.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrMissingValue is returned in strict mode when a NaN value is appended.
	ErrMissingValue = errors.New("NaN value; omit the entry instead")

	// ErrRowOutOfRange is matched by RowOutOfRangeError via errors.Is.
	ErrRowOutOfRange = errors.New("row index out of range")
)

// RowOutOfRangeError indicates a row lookup past the last row.
type RowOutOfRangeError struct {
	Index    int
	RowCount int
}

func (e *RowOutOfRangeError) Error() string {
	return fmt.Sprintf("row index out of range: %d (row count %d)", e.Index, e.RowCount)
}

func (e *RowOutOfRangeError) Is(target error) bool { return target == ErrRowOutOfRange }

// ColumnError reports the offending column of a rejected Append.
//
// The sentinel cause can be matched via errors.Is.
type ColumnError struct {
	Row    int
	Column int
	cause  error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("row %d, column %d: %v", e.Row, e.Column, e.cause)
}

func (e *ColumnError) Unwrap() error { return e.cause }
