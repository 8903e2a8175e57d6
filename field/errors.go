// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrNotPrime is returned by NewPrime when p is not a prime.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrModulusTooLarge is returned when p does not fit the coefficient width.
	ErrModulusTooLarge = errors.New("field: modulus exceeds 2^31")

	// ErrInvalidField is returned by Validate for a nil field or one whose
	// characteristic is not a prime, such as the zero Prime.
	ErrInvalidField = errors.New("field: unusable field")

	// ErrZeroInverse is returned by Inv for the zero coefficient.
	ErrZeroInverse = errors.New("field: zero has no inverse")
)
