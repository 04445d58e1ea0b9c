// Package correlation computes similarity between sparse rows.
//
// Both rows are treated as partial functions from column to value and only
// columns present in both rows participate. Rows are walked once with a
// two-pointer merge, which relies on the column order guaranteed by csr.Matrix.
//
// # Usage
//
//	sim := correlation.Pearson(a, b)  // [-1, 1], 0 when undefined
//	d := correlation.Distance(a, b)   // 1 - Pearson(a, b)
package correlation
