package csr

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_BuildAndRead(t *testing.T) {
	m := New()
	m.StartRow()
	require.NoError(t, m.Append(0, 1.5))
	require.NoError(t, m.Append(3, 2.5))
	m.StartRow()
	require.NoError(t, m.Append(1, 4))
	m.Finalize()

	assert.Equal(t, 2, m.RowCount())
	assert.Equal(t, 4, m.ColumnCount())
	assert.Equal(t, 3, m.NNZ())

	r0, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, 2, r0.Len())
	assert.Equal(t, Entry{Column: 0, Value: 1.5}, r0.At(0))
	assert.Equal(t, Entry{Column: 3, Value: 2.5}, r0.At(1))

	r1, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 1, r1.Len())
	assert.Equal(t, Entry{Column: 1, Value: 4}, r1.At(0))
}

func TestMatrix_RowCount(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *Matrix)
		want  int
	}{
		{"Empty", func(m *Matrix) {}, 0},
		{"OpenEmptyRow", func(m *Matrix) { m.StartRow() }, 0},
		{"FinalizedEmptyRow", func(m *Matrix) { m.StartRow(); m.Finalize() }, 1},
		{"OpenNonEmptyRow", func(m *Matrix) {
			m.StartRow()
			_ = m.Append(0, 1)
		}, 1},
		{"TrailingStart", func(m *Matrix) {
			m.StartRow()
			_ = m.Append(0, 1)
			m.StartRow()
		}, 1},
		{"EmptyRowInMiddle", func(m *Matrix) {
			m.StartRow()
			m.StartRow()
			_ = m.Append(2, 1)
			m.Finalize()
		}, 2},
		{"FinalizeTwice", func(m *Matrix) {
			m.StartRow()
			_ = m.Append(0, 1)
			m.Finalize()
			m.Finalize()
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			tt.build(m)
			assert.Equal(t, tt.want, m.RowCount())
		})
	}
}

func TestMatrix_EmptyRow(t *testing.T) {
	m := New()
	m.StartRow()
	m.StartRow()
	require.NoError(t, m.Append(1, 2))
	m.Finalize()

	r, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestMatrix_AppendErrors(t *testing.T) {
	t.Run("NoOpenRow", func(t *testing.T) {
		m := New()
		assert.ErrorIs(t, m.Append(0, 1), ErrNoOpenRow)

		m.StartRow()
		m.Finalize()
		assert.ErrorIs(t, m.Append(0, 1), ErrNoOpenRow)
	})

	t.Run("NegativeColumn", func(t *testing.T) {
		m := New()
		m.StartRow()
		assert.ErrorIs(t, m.Append(-1, 1), ErrInvalidColumn)
	})

	t.Run("ColumnBeyondCount", func(t *testing.T) {
		m := New(WithColumnCount(3))
		m.StartRow()
		require.NoError(t, m.Append(2, 1))
		err := m.Append(3, 1)
		assert.ErrorIs(t, err, ErrInvalidColumn)

		var ce *ColumnError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 0, ce.Row)
		assert.Equal(t, 3, ce.Column)
	})

	t.Run("Unsorted", func(t *testing.T) {
		m := New()
		m.StartRow()
		require.NoError(t, m.Append(4, 1))
		assert.ErrorIs(t, m.Append(2, 1), ErrUnsortedColumn)
	})

	t.Run("Duplicate", func(t *testing.T) {
		m := New()
		m.StartRow()
		require.NoError(t, m.Append(4, 1))
		assert.ErrorIs(t, m.Append(4, 2), ErrDuplicateColumn)
	})

	t.Run("OrderResetsPerRow", func(t *testing.T) {
		m := New()
		m.StartRow()
		require.NoError(t, m.Append(4, 1))
		m.StartRow()
		assert.NoError(t, m.Append(0, 1))
	})
}

func TestMatrix_NonFiniteValues(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		m := New()
		m.StartRow()
		require.NoError(t, m.Append(0, math.NaN()))
		require.NoError(t, m.Append(1, math.Inf(1)))
		m.Finalize()

		r, err := m.Row(0)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(r.At(0).Value))
		assert.True(t, math.IsInf(r.At(1).Value, 1))
	})

	t.Run("Strict", func(t *testing.T) {
		m := New(WithStrictValues())
		m.StartRow()
		assert.ErrorIs(t, m.Append(0, math.NaN()), ErrMissingValue)
		assert.NoError(t, m.Append(0, math.Inf(-1)))
	})
}

func TestMatrix_RowOutOfRange(t *testing.T) {
	m := New()
	require.NoError(t, m.AppendRow(Entry{Column: 0, Value: 1}))
	m.Finalize()

	for _, idx := range []int{-1, 1, 100} {
		_, err := m.Row(idx)
		assert.ErrorIs(t, err, ErrRowOutOfRange)

		var oor *RowOutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, idx, oor.Index)
		assert.Equal(t, 1, oor.RowCount)

		_, err = m.MutableRow(idx)
		assert.ErrorIs(t, err, ErrRowOutOfRange)
	}
}

func TestMatrix_MutableRow(t *testing.T) {
	m := New()
	require.NoError(t, m.AppendRow(Entry{Column: 1, Value: 1}, Entry{Column: 5, Value: 2}))
	require.NoError(t, m.AppendRow(Entry{Column: 0, Value: 9}))
	m.Finalize()

	mr, err := m.MutableRow(0)
	require.NoError(t, err)
	mr.SetValue(1, 7)
	mr.AddValue(0, 0.5)

	r, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{1, 1.5}, {5, 7}}, collect(r))

	mr.Fill(0)
	assert.Equal(t, []Entry{{1, 0}, {5, 0}}, collect(r))

	// Neighboring rows are untouched.
	r1, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{0, 9}}, collect(r1))
}

func TestRow_Value(t *testing.T) {
	m := New()
	require.NoError(t, m.AppendRow(Entry{0, 1}, Entry{2, 3}, Entry{7, 5}))
	m.Finalize()

	r, err := m.Row(0)
	require.NoError(t, err)

	v, ok := r.Value(2)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = r.Value(3)
	assert.False(t, ok)

	v, ok = r.Value(7)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestColumns(t *testing.T) {
	m := New()
	require.NoError(t, m.AppendRow(Entry{0, 1}, Entry{4, 1}))
	require.NoError(t, m.AppendRow(Entry{2, 1}, Entry{4, 2}))
	m.Finalize()

	assert.Equal(t, []uint32{0, 2, 4}, m.Columns().ToArray())

	r, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 4}, r.Columns().ToArray())
}

func TestMatrix_Rows(t *testing.T) {
	m := New()
	require.NoError(t, m.AppendRow(Entry{0, 1}))
	m.StartRow()
	require.NoError(t, m.AppendRow(Entry{1, 2}, Entry{2, 3}))
	m.StartRow()

	var lens []int
	for i, r := range m.Rows() {
		assert.Equal(t, len(lens), i)
		lens = append(lens, r.Len())
	}
	assert.Equal(t, []int{1, 0, 2}, lens)
}

func TestMatrix_ColumnCountHint(t *testing.T) {
	m := New(WithColumnCount(10))
	assert.Equal(t, 10, m.ColumnCount())

	m = New(WithColumnCount(-5))
	assert.Equal(t, 0, m.ColumnCount())
}

func collect(r Row) []Entry {
	var out []Entry
	for e := range r.Entries() {
		out = append(out, e)
	}
	return out
}

func TestRow_ValueExtremeColumns(t *testing.T) {
	m := New()
	require.NoError(t, m.AppendRow(Entry{0, 1}, Entry{5, 2}))
	m.Finalize()

	r, err := m.Row(0)
	require.NoError(t, err)

	_, ok := r.Value(math.MinInt)
	assert.False(t, ok)
	_, ok = r.Value(math.MaxInt)
	assert.False(t, ok)

	v, ok := r.Value(5)
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestMatrix_ColumnAboveMax(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot hold columns above MaxColumn")
	}

	var limit uint64 = MaxColumn

	m := New()
	m.StartRow()
	require.NoError(t, m.Append(int(limit), 1))

	m.StartRow()
	err := m.Append(int(limit+1), 1)
	assert.ErrorIs(t, err, ErrInvalidColumn)
	m.Finalize()

	r, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{math.MaxUint32}, r.Columns().ToArray())
}
