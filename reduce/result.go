// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/katalvlaran/lvtda/boundary"
	"github.com/katalvlaran/lvtda/field"
)

// Result is the immutable outcome of a reduction: the reduced matrix R, the
// pivot table and, optionally, V.
type Result struct {
	m          *boundary.Matrix
	v          []boundary.Column
	pivotOfRow []int
	strategy   Strategy
	additions  int64
	cleared    int
}

// Len returns the number of columns.
func (r *Result) Len() int { return r.m.Len() }

// Reduced returns R. Callers must treat it as read-only.
func (r *Result) Reduced() *boundary.Matrix { return r.m }

// Field returns the coefficient field of the reduction.
func (r *Result) Field() field.Field { return r.m.Field() }

// Dim returns the dimension of column j.
func (r *Result) Dim(j int) int { return r.m.Dim(j) }

// Low returns the pivot row of reduced column j, or -1 if it is zero.
func (r *Result) Low(j int) int { return r.m.Low(j) }

// DeathOf returns the column whose pivot is row i, or -1 when i is not a
// pivot row.
func (r *Result) DeathOf(i int) int { return r.pivotOfRow[i] }

// Column returns a copy of reduced column j (the birth cycle when j is a
// death column).
func (r *Result) Column(j int) boundary.Column { return r.m.Column(j) }

// HasRepresentatives reports whether V was kept.
func (r *Result) HasRepresentatives() bool { return r.v != nil }

// Chain returns a copy of column j of V, or nil without representatives.
// ∂·Chain(j) = Column(j).
func (r *Result) Chain(j int) boundary.Column {
	if r.v == nil {
		return nil
	}

	return r.v[j].Clone()
}

// Strategy returns the schedule used.
func (r *Result) Strategy() Strategy { return r.strategy }

// Additions returns the number of column additions performed.
func (r *Result) Additions() int64 { return r.additions }

// Cleared returns the number of columns zeroed by clearing.
func (r *Result) Cleared() int { return r.cleared }

// Verify checks pivot uniqueness over R and that the pivot table matches it.
func (r *Result) Verify() error {
	if err := checkUnique(r.m); err != nil {
		return err
	}
	for i, j := range r.pivotOfRow {
		if j != noPivot && r.m.Low(j) != i {
			return fmt.Errorf("Verify: pivot table maps row %d to column %d with low %d: %w",
				i, j, r.m.Low(j), ErrNotReduced)
		}
	}
	for j := 0; j < r.m.Len(); j++ {
		if i := r.m.Low(j); i >= 0 && r.pivotOfRow[i] != j {
			return fmt.Errorf("Verify: column %d low %d missing from pivot table: %w", j, i, ErrNotReduced)
		}
	}

	return nil
}

// IsReduced reports whether distinct nonzero columns of m have distinct lows.
func IsReduced(m *boundary.Matrix) bool { return checkUnique(m) == nil }

func checkUnique(m *boundary.Matrix) error {
	owner := make(map[int]int)
	for j := 0; j < m.Len(); j++ {
		i := m.Low(j)
		if i < 0 {
			continue
		}
		if k, dup := owner[i]; dup {
			return fmt.Errorf("columns %d and %d share low %d: %w", k, j, i, ErrNotReduced)
		}
		owner[i] = j
	}

	return nil
}
