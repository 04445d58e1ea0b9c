package simclust

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/simclust/correlation"
	"github.com/hupe1980/simclust/csr"
	"github.com/hupe1980/simclust/kmeans"
)

// Clusterer binds a data matrix to a k-means model.
//
// The matrix stays owned by the caller and must not change shape while the
// Clusterer is in use. A Clusterer is not safe for concurrent use.
type Clusterer struct {
	data    *csr.Matrix
	model   *kmeans.Model
	logger  *Logger
	metrics MetricsCollector
}

// FitResult summarizes a Fit loop.
type FitResult struct {
	Steps            int
	Converged        bool
	LastChanged      int
	MeanSquaredError float64
}

// New creates a Clusterer with clusterCount randomly seeded centroids sized
// to data.
func New(data *csr.Matrix, clusterCount int, optFns ...Option) (*Clusterer, error) {
	o := applyOptions(optFns)

	logger := o.logger.
		WithClusters(clusterCount).
		WithDimension(data.ColumnCount()).
		WithRows(data.RowCount())

	modelOpts := append(o.modelOptions, kmeans.WithLogger(logger.Logger))

	model, err := kmeans.New(data.RowCount(), data.ColumnCount(), clusterCount, modelOpts...)
	if err != nil {
		return nil, translateError(err)
	}

	return &Clusterer{
		data:    data,
		model:   model,
		logger:  logger,
		metrics: o.metricsCollector,
	}, nil
}

// Step runs one refinement step and returns the number of rows whose
// cluster changed.
func (c *Clusterer) Step(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	start := time.Now()
	changed, err := c.model.Step(c.data)
	err = translateError(err)

	c.metrics.RecordStep(changed, time.Since(start), err)
	c.logger.LogStep(ctx, c.model.Steps(), changed, c.model.MeanSquaredError(), err)

	return changed, err
}

// Fit runs steps until one changes no assignment or maxSteps is reached.
// The context is checked between steps.
func (c *Clusterer) Fit(ctx context.Context, maxSteps int) (FitResult, error) {
	if maxSteps < 1 {
		return FitResult{}, ErrInvalidMaxSteps
	}

	start := time.Now()

	var (
		res FitResult
		err error
	)

	for res.Steps < maxSteps {
		var changed int
		changed, err = c.Step(ctx)
		if err != nil {
			break
		}
		res.Steps++
		res.LastChanged = changed
		if changed == 0 {
			res.Converged = true
			break
		}
	}

	res.MeanSquaredError = c.model.MeanSquaredError()

	c.metrics.RecordFit(res.Steps, res.Converged, time.Since(start), err)
	c.logger.LogFit(ctx, res.Steps, res.Converged, err)

	return res, err
}

// Similarity returns the Pearson correlation of data rows i and j.
func (c *Clusterer) Similarity(i, j int) (float64, error) {
	a, err := c.data.Row(i)
	if err != nil {
		return 0, translateError(err)
	}
	b, err := c.data.Row(j)
	if err != nil {
		return 0, translateError(err)
	}
	return correlation.Pearson(a, b), nil
}

// Cluster returns the cluster of data row i.
func (c *Clusterer) Cluster(i int) (int, error) {
	if i < 0 || i >= c.model.RowCount() {
		return 0, translateError(&csr.RowOutOfRangeError{Index: i, RowCount: c.model.RowCount()})
	}
	k, ok := c.model.Cluster(i)
	if !ok {
		return 0, ErrUnassigned
	}
	return k, nil
}

// Centroid returns a read-only view of centroid k.
func (c *Clusterer) Centroid(k int) (csr.Row, error) {
	row, err := c.model.Centroid(k)
	return row, translateError(err)
}

// Members returns the data rows currently assigned to cluster k.
func (c *Clusterer) Members(k int) (*roaring.Bitmap, error) {
	rb, err := c.model.Members(k)
	return rb, translateError(err)
}

// ClusterCount returns the number of clusters.
func (c *Clusterer) ClusterCount() int {
	return c.model.ClusterCount()
}

// Model returns the underlying model.
func (c *Clusterer) Model() *kmeans.Model {
	return c.model
}
