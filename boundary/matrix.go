// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"

	"github.com/katalvlaran/lvtda/field"
	"github.com/katalvlaran/lvtda/filtration"
)

// Matrix is a sparse column-oriented boundary matrix. It is not safe for
// concurrent mutation of the same column; distinct columns may be mutated
// concurrently.
type Matrix struct {
	fld  field.Field
	cols []Column
	dims []int // dims[j] = dimension of simplex j
}

// Build assembles the boundary matrix of f over fld.
//
// Errors: ErrNilInput; ErrMalformed if a face index is not below its column
// (which Order already rules out).
//
// Complexity: O(N·k log k) for N simplices of at most k vertices.
func Build(f *filtration.Filtration, fld field.Field) (*Matrix, error) {
	if f == nil || fld == nil {
		return nil, ErrNilInput
	}
	if err := field.Validate(fld); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	n := f.Len()
	m := &Matrix{fld: fld, cols: make([]Column, n), dims: make([]int, n)}
	minus := fld.FromInt(-1)
	for j := 0; j < n; j++ {
		m.dims[j] = f.Dim(j)
		faces := f.FaceIndices(j)
		if len(faces) == 0 {
			continue
		}
		col := make(Column, len(faces))
		for t, row := range faces {
			c := field.One
			if t%2 == 1 {
				c = minus
			}
			col[t] = Entry{Row: row, Coeff: c}
		}
		m.cols[j] = normalize(fld, col)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}

// FromColumns assembles a matrix from raw columns, e.g. for explicit chain
// complexes or tests. Columns are copied and normalized (sorted, merged,
// zero-free) but not validated; call Validate.
func FromColumns(fld field.Field, dims []int, cols []Column) (*Matrix, error) {
	if fld == nil {
		return nil, ErrNilInput
	}
	if err := field.Validate(fld); err != nil {
		return nil, fmt.Errorf("FromColumns: %w", err)
	}
	if len(dims) != len(cols) {
		return nil, fmt.Errorf("FromColumns: %d dims, %d columns: %w", len(dims), len(cols), ErrDimensionMismatch)
	}
	m := &Matrix{fld: fld, cols: make([]Column, len(cols)), dims: append([]int(nil), dims...)}
	for j, c := range cols {
		m.cols[j] = normalize(fld, c.Clone())
	}

	return m, nil
}

// Len returns the number of columns N.
func (m *Matrix) Len() int { return len(m.cols) }

// Field returns the coefficient field.
func (m *Matrix) Field() field.Field { return m.fld }

// Dim returns the dimension of the simplex owning column j.
func (m *Matrix) Dim(j int) int { return m.dims[j] }

// MaxDim returns the largest column dimension, or -1 when empty.
func (m *Matrix) MaxDim() int {
	d := -1
	for _, x := range m.dims {
		d = max(d, x)
	}

	return d
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) Column { return m.cols[j].Clone() }

// Low returns the pivot row of column j or -1. O(1).
func (m *Matrix) Low(j int) int { return m.cols[j].Low() }

// LowCoeff returns the coefficient at Low(j); zero for an empty column.
func (m *Matrix) LowCoeff(j int) field.Coeff { return m.cols[j].LowCoeff() }

// IsZero reports whether column j is empty.
func (m *Matrix) IsZero(j int) bool { return len(m.cols[j]) == 0 }

// Clear zeroes column j.
func (m *Matrix) Clear(j int) { m.cols[j] = m.cols[j][:0] }

// SetColumn replaces column j with a normalized copy of c.
func (m *Matrix) SetColumn(j int, c Column) { m.cols[j] = normalize(m.fld, c.Clone()) }

// Nnz returns the total number of stored entries.
func (m *Matrix) Nnz() int {
	total := 0
	for _, c := range m.cols {
		total += len(c)
	}

	return total
}

// AddColumn performs column j += scale·column k through ws.
//
// Errors: ErrSelfAdd when j == k.
func (m *Matrix) AddColumn(j, k int, scale field.Coeff, ws *Workspace) error {
	if j == k {
		return fmt.Errorf("AddColumn(%d,%d): %w", j, k, ErrSelfAdd)
	}
	ws.Swap(m.fld, &m.cols[j], m.cols[k], scale)

	return nil
}

// Validate checks that every column is sorted, zero-free and has all rows
// in [0, j).
func (m *Matrix) Validate() error {
	for j, c := range m.cols {
		prev := -1
		for _, e := range c {
			switch {
			case e.Row < 0 || e.Row >= j:
				return fmt.Errorf("Validate: column %d has row %d: %w", j, e.Row, ErrMalformed)
			case e.Row <= prev:
				return fmt.Errorf("Validate: column %d rows not strictly ascending at %d: %w", j, e.Row, ErrMalformed)
			case m.fld.IsZero(e.Coeff):
				return fmt.Errorf("Validate: column %d stores zero at row %d: %w", j, e.Row, ErrMalformed)
			}
			prev = e.Row
		}
	}

	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{fld: m.fld, cols: make([]Column, len(m.cols)), dims: append([]int(nil), m.dims...)}
	for j, c := range m.cols {
		cp.cols[j] = c.Clone()
	}

	return cp
}

// Equal reports whether m and o hold identical columns.
func (m *Matrix) Equal(o *Matrix) bool {
	if len(m.cols) != len(o.cols) {
		return false
	}
	for j := range m.cols {
		a, b := m.cols[j], o.cols[j]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}

	return true
}
