// SPDX-License-Identifier: MIT

package reduce

import (
	"errors"

	"github.com/katalvlaran/lvtda/boundary"
)

var (
	// ErrMalformed is boundary.ErrMalformed: the input violates the
	// row < column invariant. Fatal.
	ErrMalformed = boundary.ErrMalformed

	// ErrBudgetExceeded reports that WithMaxColumnAdditions was exhausted.
	// Recoverable: retry with a larger budget or a smaller complex.
	ErrBudgetExceeded = errors.New("reduce: column addition budget exceeded")

	// ErrNotReduced reports a pivot collision found by Verify or IsReduced.
	ErrNotReduced = errors.New("reduce: pivot uniqueness violated")

	// ErrNilMatrix reports a nil input matrix.
	ErrNilMatrix = errors.New("reduce: nil matrix")
)
