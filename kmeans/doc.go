// Package kmeans implements k-means clustering of sparse profiles under
// Pearson distance (1 - correlation).
//
// Centroids are dense rows stored in a csr.Matrix and are seeded uniformly
// from [InitLow, InitHigh) by an injectable RandomSource. The caller drives the
// refinement loop: Step returns the number of rows whose assignment changed,
// and zero means a fixed point was reached.
//
//	model, _ := kmeans.New(data.RowCount(), data.ColumnCount(), 3,
//	    kmeans.WithRandomSource(kmeans.NewSource(42)))
//	for {
//	    changed, err := model.Step(data)
//	    if err != nil || changed == 0 {
//	        break
//	    }
//	}
//
// Rows with fewer than MinEntries entries are skipped by the assignment pass
// and keep whatever assignment they had.
//
// # Starved centroids
//
// A centroid cell that received no contribution during a step becomes NaN
// (0/0) under the default KeepStarved policy. Such a centroid compares false
// against every finite distance and is never chosen again for rows that
// share the column. ReseedStarved redraws those cells from the random source.
package kmeans
