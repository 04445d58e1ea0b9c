package kmeans_test

import (
	"fmt"

	"github.com/hupe1980/simclust/csr"
	"github.com/hupe1980/simclust/kmeans"
)

func ExampleModel_Step() {
	data := csr.New(csr.WithColumnCount(4))
	_ = data.AppendRow(csr.Entry{Column: 0, Value: 1}, csr.Entry{Column: 1, Value: 2}, csr.Entry{Column: 2, Value: 3}, csr.Entry{Column: 3, Value: 4})
	_ = data.AppendRow(csr.Entry{Column: 0, Value: 4}, csr.Entry{Column: 1, Value: 3}, csr.Entry{Column: 2, Value: 2}, csr.Entry{Column: 3, Value: 1})
	_ = data.AppendRow(csr.Entry{Column: 0, Value: 2}, csr.Entry{Column: 1, Value: 3}, csr.Entry{Column: 3, Value: 5})
	data.Finalize()

	model, err := kmeans.New(data.RowCount(), data.ColumnCount(), 2, kmeans.WithRandomSource(kmeans.NewSource(1)))
	if err != nil {
		panic(err)
	}

	for range 100 {
		changed, err := model.Step(data)
		if err != nil {
			panic(err)
		}
		if changed == 0 {
			break
		}
	}

	a, _ := model.Cluster(0)
	b, _ := model.Cluster(1)
	c, _ := model.Cluster(2)
	fmt.Println(a == c, a == b)
	// Output: true false
}
