package kmeans

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/simclust/correlation"
	"github.com/hupe1980/simclust/csr"
)

// Unassigned marks a row that has not been assigned to any cluster yet.
const Unassigned = -1

// Model holds k dense centroids and the current cluster of every data row.
//
// Model is not safe for concurrent use; calls to Step must be serialized.
type Model struct {
	rowCount     int
	columnCount  int
	clusterCount int

	centroids *csr.Matrix
	rows      []csr.MutableRow // one dense view per centroid

	assignments []int
	counts      []int // contributions per (cluster, column)

	opts options

	steps            int
	assignedLastStep int
	meanSquaredError float64
}

// New creates a model for rowCount data rows over columnCount columns with
// clusterCount centroids. Every centroid cell is drawn from [InitLow, InitHigh)
// and every row starts unassigned.
func New(rowCount, columnCount, clusterCount int, optFns ...Option) (*Model, error) {
	if rowCount < 0 {
		return nil, ErrInvalidRowCount
	}
	if columnCount < 1 {
		return nil, ErrInvalidColumnCount
	}
	if clusterCount < 1 {
		return nil, ErrInvalidClusterCount
	}

	o := applyOptions(optFns)

	centroids := csr.New(csr.WithColumnCount(columnCount))
	for range clusterCount {
		centroids.StartRow()
		for c := range columnCount {
			if err := centroids.Append(c, o.source.Uniform(InitLow, InitHigh)); err != nil {
				return nil, err
			}
		}
	}
	centroids.Finalize()

	rows := make([]csr.MutableRow, clusterCount)
	for i := range rows {
		r, err := centroids.MutableRow(i)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	assignments := make([]int, rowCount)
	for i := range assignments {
		assignments[i] = Unassigned
	}

	return &Model{
		rowCount:         rowCount,
		columnCount:      columnCount,
		clusterCount:     clusterCount,
		centroids:        centroids,
		rows:             rows,
		assignments:      assignments,
		counts:           make([]int, clusterCount*columnCount),
		opts:             o,
		meanSquaredError: math.NaN(),
	}, nil
}

// Step runs one refinement iteration over data and returns the number of
// rows whose assignment changed. Zero means the model reached a fixed point.
//
// Rows with fewer than the minimum number of entries are skipped and keep
// their previous assignment. Centroids are then recomputed as the per-column
// mean of all assigned rows.
func (m *Model) Step(data *csr.Matrix) (int, error) {
	if n := data.RowCount(); n != m.rowCount {
		return 0, &RowCountMismatchError{Expected: m.rowCount, Actual: n}
	}
	if n := data.ColumnCount(); n > m.columnCount {
		return 0, fmt.Errorf("%w: matrix has %d columns, model has %d", ErrColumnOutOfRange, n, m.columnCount)
	}

	// Assign nearest centroids.
	changed, assigned := 0, 0
	errorSum := 0.0
	for i, row := range data.Rows() {
		if row.Len() < m.opts.minEntries {
			continue
		}
		cluster, dist := m.nearest(row)
		if m.assignments[i] != cluster {
			m.assignments[i] = cluster
			changed++
		}
		assigned++
		errorSum += dist * dist
	}

	// Reset centroids.
	for _, centroid := range m.rows {
		centroid.Fill(0)
	}
	clear(m.counts)

	// Sum up values. Centroids are dense, so entry index equals column.
	for i, row := range data.Rows() {
		cluster := m.assignments[i]
		if cluster == Unassigned {
			continue
		}
		centroid := m.rows[cluster]
		offset := cluster * m.columnCount
		for e := range row.Entries() {
			m.counts[offset+e.Column]++
			centroid.AddValue(e.Column, e.Value)
		}
	}

	// Divide by contribution count.
	reseeded := 0
	for cluster, centroid := range m.rows {
		offset := cluster * m.columnCount
		for c := range centroid.Len() {
			n := m.counts[offset+c]
			if n == 0 && m.opts.policy == ReseedStarved {
				centroid.SetValue(c, m.opts.source.Uniform(InitLow, InitHigh))
				reseeded++
				continue
			}
			centroid.SetValue(c, centroid.At(c).Value/float64(n))
		}
	}

	m.steps++
	m.assignedLastStep = assigned
	m.meanSquaredError = errorSum / float64(assigned)

	if reseeded > 0 && m.opts.logger != nil {
		m.opts.logger.Debug("reseeded starved centroid cells",
			"step", m.steps,
			"cells", reseeded,
		)
	}

	return changed, nil
}

// nearest returns the centroid with the strictly smallest distance to row.
// Ties go to the lowest index; NaN distances never win.
func (m *Model) nearest(row csr.Row) (int, float64) {
	best := 0
	minDist := math.Inf(1)

	for i, centroid := range m.rows {
		d := correlation.Distance(row, centroid.Row)
		if d < minDist {
			minDist = d
			best = i
		}
	}

	return best, minDist
}

// RowCount returns the number of data rows the model was sized for.
func (m *Model) RowCount() int { return m.rowCount }

// ColumnCount returns the number of columns of every centroid.
func (m *Model) ColumnCount() int { return m.columnCount }

// ClusterCount returns the number of clusters.
func (m *Model) ClusterCount() int { return m.clusterCount }

// Steps returns the number of completed Step calls.
func (m *Model) Steps() int { return m.steps }

// AssignedLastStep returns how many rows took part in the last assignment pass.
func (m *Model) AssignedLastStep() int { return m.assignedLastStep }

// MeanSquaredError returns the mean squared distance between each row assigned
// in the last step and its chosen centroid. It is NaN before the first step
// and when no row was assigned.
func (m *Model) MeanSquaredError() float64 { return m.meanSquaredError }

// Cluster returns the cluster of row, or false if the row is unassigned.
// It panics if row is out of range.
func (m *Model) Cluster(row int) (int, bool) {
	c := m.assignments[row]
	if c == Unassigned {
		return 0, false
	}
	return c, true
}

// Assignments returns a copy of the assignment table; Unassigned marks
// rows without a cluster.
func (m *Model) Assignments() []int {
	return slices.Clone(m.assignments)
}

// Centroid returns a read-only view of centroid i.
func (m *Model) Centroid(i int) (csr.Row, error) {
	return m.centroids.Row(i)
}

// Members returns the rows currently assigned to cluster.
// Row indices above math.MaxUint32 do not fit the bitmap and are left out.
func (m *Model) Members(cluster int) (*roaring.Bitmap, error) {
	if cluster < 0 || cluster >= m.clusterCount {
		return nil, fmt.Errorf("%w: %d", ErrClusterOutOfRange, cluster)
	}
	rb := roaring.New()
	for row, c := range m.assignments {
		if c == cluster && uint64(row) <= math.MaxUint32 {
			rb.Add(uint32(row))
		}
	}
	return rb, nil
}

// Sizes returns the number of rows assigned to each cluster.
func (m *Model) Sizes() []int {
	sizes := make([]int, m.clusterCount)
	for _, c := range m.assignments {
		if c != Unassigned {
			sizes[c]++
		}
	}
	return sizes
}

// DeadCentroids returns the clusters whose centroid holds a non-finite value.
// Rows sharing such a column can no longer be assigned to them.
func (m *Model) DeadCentroids() []int {
	var dead []int
	for i, centroid := range m.rows {
		for e := range centroid.Entries() {
			if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
				dead = append(dead, i)
				break
			}
		}
	}
	return dead
}
