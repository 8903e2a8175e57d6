// SPDX-License-Identifier: MIT

package boundary

import "errors"

var (
	// ErrMalformed reports a structurally invalid matrix: a row index ≥ its
	// column index, unsorted or duplicate rows, or a stored zero.
	ErrMalformed = errors.New("boundary: malformed matrix")

	// ErrSelfAdd reports an attempt to add a column into itself.
	ErrSelfAdd = errors.New("boundary: column added into itself")

	// ErrNilInput reports a nil filtration or field.
	ErrNilInput = errors.New("boundary: nil input")

	// ErrDimensionMismatch reports len(dims) != len(cols) in FromColumns.
	ErrDimensionMismatch = errors.New("boundary: dims and columns differ in length")
)
