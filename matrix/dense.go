// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is the read/write view the complex builders accept. Implementations
// report bad indices through errors rather than panics.
type Matrix interface {
	// Rows is the number of rows (points, for a distance matrix).
	Rows() int

	// Cols is the number of columns.
	Cols() int

	// At reads entry (i, j); ErrOutOfRange for bad indices.
	At(i, j int) (float64, error)

	// Set writes entry (i, j); ErrOutOfRange for bad indices.
	Set(i, j int, v float64) error

	// Clone returns an independent copy.
	Clone() Matrix
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// Dense stores r×c float64 values in one row-major slice; entry (i, j)
// lives at i*c + j.
type Dense struct {
	r, c int
	buf  []float64
}

// entryErr tags err with the operation and the offending coordinates.
func entryErr(op string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
}

// NewDense allocates a zero r×c matrix. ErrInvalidDimensions unless both
// sides are positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, buf: make([]float64, rows*cols)}, nil
}

// NewDistance allocates a zero n×n distance matrix.
func NewDistance(n int) (*Dense, error) { return NewDense(n, n) }

// FromRows builds a matrix from literal rows, all of which must share the
// length of the first.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	d := &Dense{r: len(rows), c: len(rows[0])}
	d.buf = make([]float64, 0, d.r*d.c)
	for i, row := range rows {
		if len(row) != d.c {
			return nil, entryErr("FromRows", i, len(row), ErrDimensionMismatch)
		}
		d.buf = append(d.buf, row...)
	}

	return d, nil
}

// Rows returns the number of rows, the point count for a distance matrix.
// Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < d.r && j >= 0 && j < d.c
}

// At reads entry (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	if !d.inBounds(i, j) {
		return 0, entryErr("Dense.At", i, j, ErrOutOfRange)
	}

	return d.buf[i*d.c+j], nil
}

// Set writes entry (i, j). Values are not checked here; run
// ValidateDistances once the matrix is filled.
func (d *Dense) Set(i, j int, v float64) error {
	if !d.inBounds(i, j) {
		return entryErr("Dense.Set", i, j, ErrOutOfRange)
	}
	d.buf[i*d.c+j] = v

	return nil
}

// SetSym writes v to both (i, j) and (j, i).
func (d *Dense) SetSym(i, j int, v float64) error {
	if err := d.Set(i, j, v); err != nil {
		return err
	}

	return d.Set(j, i, v)
}

// at skips the bounds check; callers validate shape first.
func (d *Dense) at(i, j int) float64 { return d.buf[i*d.c+j] }

// Clone returns a deep copy backed by a fresh buffer; the dynamic type is *Dense.
// Complexity: O(r*c) time and memory.
func (d *Dense) Clone() Matrix {
	return &Dense{r: d.r, c: d.c, buf: append([]float64(nil), d.buf...)}
}

// String prints one bracketed, comma-separated line per row.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteByte('[')
		for j, v := range d.buf[i*d.c : (i+1)*d.c] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
