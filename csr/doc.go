// Package csr provides a row-oriented sparse matrix (compressed sparse rows).
//
// Rows are built incrementally: StartRow opens a row, Append adds entries to it
// in increasing column order, and the next StartRow (or Finalize) closes it.
// Entries of all rows share a single backing slice, so row lookup is O(1) and
// append is amortized O(1).
//
// # Usage
//
//	m := csr.New(csr.WithColumnCount(6))
//	m.StartRow()
//	_ = m.Append(0, 2.5)
//	_ = m.Append(3, 3.5)
//	m.Finalize()
//
//	row, err := m.Row(0)
//
// A missing value is an absent entry. Storing NaN as a placeholder makes the
// column count as shared in correlation and poisons the result; use
// WithStrictValues to reject NaN at insertion time.
package csr
