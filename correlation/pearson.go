package correlation

import (
	"math"

	"github.com/hupe1980/simclust/csr"
)

// DenominatorEpsilon is the smallest denominator for which Pearson returns a ratio.
// Below it the shared values have (almost) no variance and Pearson returns 0.
const DenominatorEpsilon = 1e-6

// Pearson returns the Pearson correlation of a and b over their shared columns.
//
// It returns 0 when the rows share no column or when either side has
// near-zero variance on the shared columns, so a constant row correlates as 0
// even with itself. NaN (or infinite) values on shared columns make the
// result NaN.
func Pearson(a, b csr.Row) float64 {
	var (
		n                 int
		sumA, sumSquaredA float64
		sumB, sumSquaredB float64
		productSum        float64
	)

	lenA, lenB := a.Len(), b.Len()
	i, j := 0, 0

	for i < lenA && j < lenB {
		ea, eb := a.At(i), b.At(j)
		switch {
		case ea.Column < eb.Column:
			i++
		case ea.Column > eb.Column:
			j++
		default:
			n++
			sumA += ea.Value
			sumSquaredA += ea.Value * ea.Value
			sumB += eb.Value
			sumSquaredB += eb.Value * eb.Value
			productSum += ea.Value * eb.Value
			i++
			j++
		}
	}

	if n == 0 {
		return 0
	}

	fn := float64(n)
	numerator := productSum - (sumA * sumB / fn)
	variance := (sumSquaredA - sumA*sumA/fn) * (sumSquaredB - sumB*sumB/fn)

	// Only non-finite input yields NaN here; rounding may push a zero variance below 0.
	if math.IsNaN(variance) {
		return math.NaN()
	}

	denominator := math.Sqrt(max(variance, 0))
	if denominator <= DenominatorEpsilon {
		return 0
	}
	return numerator / denominator
}

// Distance returns 1 - Pearson(a, b), in [0, 2] for finite input.
func Distance(a, b csr.Row) float64 {
	return 1 - Pearson(a, b)
}

// Overlap returns the number of columns present in both rows.
func Overlap(a, b csr.Row) int {
	n := 0
	i, j := 0, 0
	for i < a.Len() && j < b.Len() {
		ca, cb := a.At(i).Column, b.At(j).Column
		switch {
		case ca < cb:
			i++
		case ca > cb:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}
