// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels are wrapped with %w and the offending coordinates; match them
// with errors.Is.
var (
	// ErrInvalidDimensions: a requested side is zero or negative.
	ErrInvalidDimensions = errors.New("matrix: non-positive dimensions")

	// ErrOutOfRange: a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("matrix: index outside matrix")

	// ErrDimensionMismatch: non-square distance input, ragged rows, or a
	// point set with no coordinates.
	ErrDimensionMismatch = errors.New("matrix: shape mismatch")

	// ErrNilMatrix: a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAsymmetry: d(i,j) and d(j,i) disagree beyond the tolerance.
	ErrAsymmetry = errors.New("matrix: asymmetric distances")

	// ErrNaN: a distance is NaN.
	ErrNaN = errors.New("matrix: NaN distance")

	// ErrNegativeDistance: an off-diagonal distance is below zero.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNilFunc: the distance callback is nil.
	ErrNilFunc = errors.New("matrix: nil distance function")
)
