// SPDX-License-Identifier: MIT

package diagram

import "errors"

var (
	// ErrNilInput reports a nil filtration or reduction result.
	ErrNilInput = errors.New("diagram: nil input")

	// ErrSizeMismatch reports a filtration and result of different lengths.
	ErrSizeMismatch = errors.New("diagram: filtration and reduction differ in size")

	// ErrInconsistentPairing reports an index paired twice or not at all.
	ErrInconsistentPairing = errors.New("diagram: inconsistent pairing")

	// ErrEmptyDimension is returned by Summary for a dimension without bars.
	ErrEmptyDimension = errors.New("diagram: no intervals in dimension")
)
