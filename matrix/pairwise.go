// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceFunc returns the distance between points i and j.
type DistanceFunc func(i, j int) float64

// Pairwise builds the symmetric n×n matrix of Minkowski L distances between
// the rows of points (n points in d dimensions). L=2 is Euclidean, L=1
// Manhattan and math.Inf(1) Chebyshev.
//
// Errors:
//   - ErrNilMatrix for nil points.
//   - ErrInvalidDimensions for an empty point cloud or L ≤ 0.
//   - ErrNaN when a coordinate is NaN.
//
// Complexity: O(n²·d) time, O(n²) memory.
func Pairwise(points mat.Matrix, L float64) (*Dense, error) {
	if points == nil {
		return nil, ErrNilMatrix
	}
	if !(L > 0) {
		return nil, fmt.Errorf("Pairwise: L=%g: %w", L, ErrInvalidDimensions)
	}
	n, d := points.Dims()
	if n == 0 || d == 0 {
		return nil, ErrInvalidDimensions
	}

	// Extract rows once; floats.Distance works on slices.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, points)
		if floats.HasNaN(rows[i]) {
			return nil, fmt.Errorf("Pairwise: point %d: %w", i, ErrNaN)
		}
	}

	out, _ := NewDistance(n) // n > 0 checked above
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := floats.Distance(rows[i], rows[j], L)
			out.buf[i*n+j] = v
			out.buf[j*n+i] = v
		}
	}

	return out, nil
}

// Euclidean is Pairwise with L=2.
func Euclidean(points mat.Matrix) (*Dense, error) {
	return Pairwise(points, 2)
}

// FromFunc materialises fn over all unordered pairs of n points. fn is called
// once per pair with i<j; the result is mirrored, so an asymmetric callback
// cannot produce an asymmetric matrix. NaN and negative values are rejected.
//
// Complexity: O(n²) calls to fn.
func FromFunc(n int, fn DistanceFunc) (*Dense, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	out, err := NewDistance(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := fn(i, j)
			if math.IsNaN(v) {
				return nil, validatorErrorf("FromFunc", i, j, v, ErrNaN)
			}
			if v < 0 {
				return nil, validatorErrorf("FromFunc", i, j, v, ErrNegativeDistance)
			}
			out.buf[i*n+j] = v
			out.buf[j*n+i] = v
		}
	}

	return out, nil
}

// Distance returns m(i,j) without bounds checks on *Dense and through At
// otherwise. Callers must have validated the shape first.
func Distance(m Matrix, i, j int) float64 {
	if d, ok := m.(*Dense); ok {
		return d.at(i, j)
	}
	v, _ := m.At(i, j)

	return v
}
