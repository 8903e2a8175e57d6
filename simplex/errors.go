// SPDX-License-Identifier: MIT

package simplex

import "errors"

var (
	// ErrEmpty is returned when a simplex is requested with no vertices.
	ErrEmpty = errors.New("simplex: at least one vertex is required")

	// ErrNegativeVertex is returned when a vertex index is negative.
	ErrNegativeVertex = errors.New("simplex: vertex index must be non-negative")

	// ErrInvalidValue is returned when a filtration value is NaN.
	ErrInvalidValue = errors.New("simplex: filtration value is NaN")
)
