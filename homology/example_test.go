package homology_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtda/homology"
	"gonum.org/v1/gonum/mat"
)

// ExampleCompute computes the barcode of the four corners of a unit square.
// Three components merge at scale 1, when the loop appears; the loop is
// filled in at √2 by the diagonals' triangles.
func ExampleCompute() {
	points := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	})
	res, err := homology.Compute(context.Background(), homology.Input{Points: points},
		homology.WithHomologyDim(1), homology.WithDropZeroPersistence())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, dim := range []int{0, 1} {
		for _, iv := range res.Diagram.Intervals(dim) {
			fmt.Println(iv)
		}
	}
	fmt.Println("betti at 1.2:", res.Diagram.BettiNumbers(1.2))
	// Output:
	// H0 [0, +Inf)
	// H0 [0, 1)
	// H0 [0, 1)
	// H0 [0, 1)
	// H1 [1, 1.4142135623730951)
	// betti at 1.2: [1 1 0]
}
