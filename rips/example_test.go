package rips_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/matrix"
	"github.com/katalvlaran/lvtda/rips"
)

// ExampleBuild enumerates the Rips complex of three points on a line.
func ExampleBuild() {
	dist, _ := matrix.FromRows([][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	c, err := rips.Build(context.Background(), dist, rips.WithMaxDim(2), rips.WithMaxScale(2.5))
	if err != nil {
		fmt.Println(err)
		return
	}
	f, _ := filtration.Order(c)
	for i := 0; i < f.Len(); i++ {
		fmt.Println(f.At(i))
	}
	// Output:
	// [0]@0
	// [1]@0
	// [2]@0
	// [0 1]@1
	// [1 2]@2
}
