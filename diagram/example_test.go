package diagram_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtda/boundary"
	"github.com/katalvlaran/lvtda/diagram"
	"github.com/katalvlaran/lvtda/field"
	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/reduce"
	"github.com/katalvlaran/lvtda/simplex"
)

// ExampleExtract shows a loop born at 3 and filled at 4.
func ExampleExtract() {
	c, _ := filtration.FromSimplices([]simplex.Simplex{
		simplex.MustNew(0, 0), simplex.MustNew(0, 1), simplex.MustNew(0, 2),
		simplex.MustNew(1, 0, 1), simplex.MustNew(2, 0, 2), simplex.MustNew(3, 1, 2),
		simplex.MustNew(4, 0, 1, 2),
	})
	f, _ := filtration.Order(c)
	m, _ := boundary.Build(f, field.GF2)
	r, _ := reduce.Reduce(context.Background(), m)
	d, _ := diagram.Extract(f, r)

	for _, dim := range d.Dims() {
		for _, iv := range d.Intervals(dim) {
			fmt.Println(iv)
		}
	}
	fmt.Println(d.BettiNumbers(3.5))
	// Output:
	// H0 [0, +Inf)
	// H0 [0, 1)
	// H0 [0, 2)
	// H1 [3, 4)
	// [1 1]
}
