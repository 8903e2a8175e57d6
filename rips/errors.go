// SPDX-License-Identifier: MIT

package rips

import "errors"

var (
	// ErrInvalidInput reports inconsistent distances, weights or bounds.
	// The wrapped message names the offending index.
	ErrInvalidInput = errors.New("rips: invalid input")

	// ErrResourceExceeded reports that the simplex ceiling was hit.
	ErrResourceExceeded = errors.New("rips: simplex ceiling exceeded")
)
