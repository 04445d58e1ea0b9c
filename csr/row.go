package csr

import (
	"cmp"
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Entry is one stored cell of a sparse row.
type Entry struct {
	Column int
	Value  float64
}

// Row is a read-only view of one matrix row.
// Entries are sorted by strictly increasing column.
//
// A view shares storage with its Matrix and is invalidated by a later Append.
type Row struct {
	entries []Entry
}

// Len returns the number of stored entries.
func (r Row) Len() int {
	return len(r.entries)
}

// At returns the i-th stored entry (not the entry for column i).
func (r Row) At(i int) Entry {
	return r.entries[i]
}

// Entries returns an iterator over the stored entries in column order.
func (r Row) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Value returns the value stored for column, if any.
func (r Row) Value(column int) (float64, bool) {
	i, found := slices.BinarySearchFunc(r.entries, column, func(e Entry, c int) int {
		return cmp.Compare(e.Column, c)
	})
	if !found {
		return 0, false
	}
	return r.entries[i].Value, true
}

// Columns returns the set of columns present in the row.
func (r Row) Columns() *roaring.Bitmap {
	rb := roaring.New()
	for _, e := range r.entries {
		rb.Add(uint32(e.Column))
	}
	return rb
}

// MutableRow is a writable view of one matrix row.
// Only values can change; the column set is fixed.
type MutableRow struct {
	Row
}

// SetValue overwrites the value of the i-th stored entry.
func (r MutableRow) SetValue(i int, v float64) {
	r.entries[i].Value = v
}

// AddValue adds delta to the value of the i-th stored entry.
func (r MutableRow) AddValue(i int, delta float64) {
	r.entries[i].Value += delta
}

// Fill sets every stored value to v.
func (r MutableRow) Fill(v float64) {
	for i := range r.entries {
		r.entries[i].Value = v
	}
}
