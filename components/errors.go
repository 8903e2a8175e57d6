// SPDX-License-Identifier: MIT

package components

import "errors"

var (
	// ErrNilInput reports a nil filtration or diagram.
	ErrNilInput = errors.New("components: nil input")

	// ErrMismatch reports H0 pairs that disagree with the union-find result.
	ErrMismatch = errors.New("components: H0 pairing mismatch")

	// ErrNotGraph reports a filtration with simplices above dimension 1.
	ErrNotGraph = errors.New("components: filtration is not a graph")
)
