package correlation_test

import (
	"fmt"

	"github.com/hupe1980/simclust/correlation"
	"github.com/hupe1980/simclust/csr"
)

func ExamplePearson() {
	m := csr.New()
	_ = m.AppendRow(
		csr.Entry{Column: 0, Value: 1},
		csr.Entry{Column: 1, Value: 2},
		csr.Entry{Column: 3, Value: 3},
	)
	_ = m.AppendRow(
		csr.Entry{Column: 0, Value: 2},
		csr.Entry{Column: 1, Value: 4},
		csr.Entry{Column: 2, Value: 9},
		csr.Entry{Column: 3, Value: 6},
	)
	m.Finalize()

	a, _ := m.Row(0)
	b, _ := m.Row(1)

	fmt.Printf("%.2f %d\n", correlation.Pearson(a, b), correlation.Overlap(a, b))
	// Output: 1.00 3
}
