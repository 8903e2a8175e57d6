// SPDX-License-Identifier: MIT

// Package matrix - validators for distance structures.
//
// Every validator reports the first offending entry in row-major order so the
// caller can point at the exact (row, col) pair. Loops are fixed i→j for
// deterministic diagnostics.

package matrix

import (
	"fmt"
	"math"
)

// DefaultSymmetryEps is the absolute tolerance used by ValidateDistances when
// comparing d(i,j) and d(j,i).
const DefaultSymmetryEps = 1e-9

// validatorErrorf attaches (i,j) coordinates to a sentinel.
func validatorErrorf(method string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: d(%d,%d)=%g: %w", method, i, j, v, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil interface or nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare checks that m is non-nil and n×n.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |m(i,j) - m(j,i)| ≤ eps for all i<j. Two +Inf
// entries are considered equal.
//
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, _ := m.At(i, j) // bounds already checked
			b, _ := m.At(j, i)
			if a == b {
				continue // covers +Inf == +Inf
			}
			if math.IsNaN(a) || math.IsNaN(b) || math.Abs(a-b) > eps {
				return validatorErrorf("ValidateSymmetric", i, j, a, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistances checks that m is a usable distance structure: square,
// symmetric within DefaultSymmetryEps, no NaN and no negative off-diagonal
// entries. +Inf is allowed. The diagonal is not inspected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaN, ErrNegativeDistance,
// ErrAsymmetry, each wrapped with the offending coordinates.
//
// Complexity: O(n²), no allocation.
func ValidateDistances(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ := m.At(i, j)
			switch {
			case math.IsNaN(v):
				return validatorErrorf("ValidateDistances", i, j, v, ErrNaN)
			case v < 0:
				return validatorErrorf("ValidateDistances", i, j, v, ErrNegativeDistance)
			}
		}
	}

	return ValidateSymmetric(m, DefaultSymmetryEps)
}
