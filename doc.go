// Package simclust clusters sparse numeric profiles, such as user ratings
// over a shared item space, by Pearson correlation.
//
// Each profile rates only a few of the possible items. Similarity is computed
// over the items two profiles have in common, and profiles are partitioned by
// k-means around dense centroids.
//
// # Packages
//
//   - csr: row-oriented sparse matrix used for data and centroids
//   - correlation: Pearson correlation and distance over two sparse rows
//   - kmeans: the clustering model and its refinement step
//
// # Quick Start
//
//	data := csr.New(csr.WithColumnCount(6))
//	_ = data.AppendRow(csr.Entry{Column: 0, Value: 2.5}, csr.Entry{Column: 3, Value: 3.5}, ...)
//	data.Finalize()
//
//	c, _ := simclust.New(data, 3, simclust.WithSeed(42))
//	res, _ := c.Fit(ctx, 100)
//	if res.Converged {
//	    k, _ := c.Cluster(0)
//	}
//
// # Convergence
//
// Fit stops at the first step that changes no assignment. A centroid that
// ends up with a non-finite cell (a column no member rated) can no longer win
// rows that rate that column; see kmeans.StarvationPolicy.
//
// # Logging and Metrics
//
//	c, _ := simclust.New(data, 3,
//	    simclust.WithLogger(simclust.NewJSONLogger(slog.LevelDebug)),
//	    simclust.WithMetricsCollector(&simclust.BasicMetricsCollector{}),
//	)
package simclust
