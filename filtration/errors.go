// SPDX-License-Identifier: MIT

package filtration

import "errors"

var (
	// ErrInvalidInput reports a malformed explicit filtration: missing faces,
	// non-monotone values, non-finite values or invalid simplices.
	ErrInvalidInput = errors.New("filtration: invalid input")

	// ErrDuplicateSimplex reports the same vertex set added twice.
	ErrDuplicateSimplex = errors.New("filtration: duplicate simplex")

	// ErrOrderingViolation reports a face that does not precede its coface
	// after ordering. It always indicates a defect upstream and is fatal.
	ErrOrderingViolation = errors.New("filtration: face does not precede coface")

	// ErrNilComplex is returned when a nil *Complex is ordered.
	ErrNilComplex = errors.New("filtration: nil complex")
)
