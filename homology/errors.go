// SPDX-License-Identifier: MIT

package homology

import (
	"errors"

	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/reduce"
	"github.com/katalvlaran/lvtda/rips"
)

var (
	// ErrInvalidInput wraps every input rejection, whichever stage found it.
	ErrInvalidInput = errors.New("homology: invalid input")

	// ErrInternal reports a failed self-check (WithCrossCheck).
	ErrInternal = errors.New("homology: internal invariant violated")

	// ErrResourceExceeded is rips.ErrResourceExceeded.
	ErrResourceExceeded = rips.ErrResourceExceeded

	// ErrBudgetExceeded is reduce.ErrBudgetExceeded.
	ErrBudgetExceeded = reduce.ErrBudgetExceeded

	// ErrOrderingViolation is filtration.ErrOrderingViolation.
	ErrOrderingViolation = filtration.ErrOrderingViolation

	// ErrMalformed is reduce.ErrMalformed.
	ErrMalformed = reduce.ErrMalformed
)
