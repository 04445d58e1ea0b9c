package csr

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// MaxColumn is the largest column index a Matrix accepts, so that column sets
// fit a 32-bit roaring bitmap.
const MaxColumn = math.MaxUint32

// Matrix is an append-only sparse matrix stored row by row.
//
// Matrix is not safe for concurrent mutation.
type Matrix struct {
	entries   []Entry
	offsets   []int // start of each row in entries
	open      bool
	maxColumn int
	opts      options
}

// New creates an empty matrix with no rows.
func New(optFns ...Option) *Matrix {
	return &Matrix{
		maxColumn: -1,
		opts:      applyOptions(optFns),
	}
}

// StartRow closes the current row, even if it is empty, and opens a new one.
func (m *Matrix) StartRow() {
	m.offsets = append(m.offsets, len(m.entries))
	m.open = true
}

// Finalize closes the open row. An empty row closed by Finalize counts as a row.
// Calling Finalize without an open row is a no-op.
func (m *Matrix) Finalize() {
	m.open = false
}

// Append adds an entry to the open row.
//
// Columns must be appended in strictly increasing order.
func (m *Matrix) Append(column int, value float64) error {
	if !m.open {
		return ErrNoOpenRow
	}

	row := len(m.offsets) - 1

	if column < 0 || uint64(column) > MaxColumn || (m.opts.columnCount > 0 && column >= m.opts.columnCount) {
		return &ColumnError{Row: row, Column: column, cause: ErrInvalidColumn}
	}

	if m.opts.strictValues && math.IsNaN(value) {
		return &ColumnError{Row: row, Column: column, cause: ErrMissingValue}
	}

	if n := len(m.entries); n > m.offsets[row] {
		switch last := m.entries[n-1].Column; {
		case column < last:
			return &ColumnError{Row: row, Column: column, cause: ErrUnsortedColumn}
		case column == last:
			return &ColumnError{Row: row, Column: column, cause: ErrDuplicateColumn}
		}
	}

	m.entries = append(m.entries, Entry{Column: column, Value: value})
	if column > m.maxColumn {
		m.maxColumn = column
	}

	return nil
}

// AppendRow starts a new row holding entries.
//
// On error the row stays open with the entries appended so far.
func (m *Matrix) AppendRow(entries ...Entry) error {
	m.StartRow()
	for _, e := range entries {
		if err := m.Append(e.Column, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// RowCount returns the number of rows.
//
// A trailing row that was started but neither filled nor finalized is not counted.
func (m *Matrix) RowCount() int {
	n := len(m.offsets)
	if m.open && n > 0 && m.offsets[n-1] == len(m.entries) {
		n--
	}
	return n
}

// ColumnCount returns the configured column count or, if larger,
// the highest appended column plus one.
func (m *Matrix) ColumnCount() int {
	return max(m.opts.columnCount, m.maxColumn+1)
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int {
	return len(m.entries)
}

// Row returns a read-only view of row i.
func (m *Matrix) Row(i int) (Row, error) {
	start, end, err := m.bounds(i)
	if err != nil {
		return Row{}, err
	}
	return Row{entries: m.entries[start:end:end]}, nil
}

// MutableRow returns a writable view of row i.
func (m *Matrix) MutableRow(i int) (MutableRow, error) {
	row, err := m.Row(i)
	if err != nil {
		return MutableRow{}, err
	}
	return MutableRow{Row: row}, nil
}

// Rows returns an iterator over all rows in index order.
func (m *Matrix) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		n := m.RowCount()
		for i := 0; i < n; i++ {
			start, end, _ := m.bounds(i)
			if !yield(i, Row{entries: m.entries[start:end:end]}) {
				return
			}
		}
	}
}

// Columns returns the set of columns present in any row.
func (m *Matrix) Columns() *roaring.Bitmap {
	rb := roaring.New()
	for _, e := range m.entries {
		rb.Add(uint32(e.Column))
	}
	return rb
}

func (m *Matrix) bounds(i int) (int, int, error) {
	n := m.RowCount()
	if i < 0 || i >= n {
		return 0, 0, &RowOutOfRangeError{Index: i, RowCount: n}
	}
	start := m.offsets[i]
	end := len(m.entries)
	if i+1 < len(m.offsets) {
		end = m.offsets[i+1]
	}
	return start, end, nil
}
