// SPDX-License-Identifier: MIT

package boundary

import (
	"slices"

	"github.com/katalvlaran/lvtda/field"
)

// Entry is one nonzero coefficient of a column.
type Entry struct {
	Row   int
	Coeff field.Coeff
}

// Column is a sparse column sorted by ascending Row with no zero entries.
type Column []Entry

// Low returns the largest row of c, or -1 for the zero column.
func (c Column) Low() int {
	if len(c) == 0 {
		return -1
	}

	return c[len(c)-1].Row
}

// LowCoeff returns the coefficient at Low; zero for the zero column.
func (c Column) LowCoeff() field.Coeff {
	if len(c) == 0 {
		return field.Zero
	}

	return c[len(c)-1].Coeff
}

// Rows returns the row indices of c.
func (c Column) Rows() []int {
	out := make([]int, len(c))
	for i, e := range c {
		out[i] = e.Row
	}

	return out
}

// Clone returns an independent copy of c.
func (c Column) Clone() Column { return slices.Clone(c) }

// AddInto writes dst + scale·src into buf[:0] and returns it. dst and src
// are read only; buf must not share storage with either. Entries that
// cancel are dropped, so the result is again a valid Column.
//
// Over GF(2) scale is ignored (it can only be 1) and the result is the
// symmetric difference of the row sets.
//
// Complexity: O(len(dst)+len(src)).
func AddInto(fld field.Field, dst, src Column, scale field.Coeff, buf Column) Column {
	out := buf[:0]
	binary := field.IsBinary(fld)
	i, j := 0, 0
	for i < len(dst) && j < len(src) {
		a, b := dst[i], src[j]
		switch {
		case a.Row < b.Row:
			out = append(out, a)
			i++
		case a.Row > b.Row:
			if binary {
				out = append(out, b)
			} else {
				out = append(out, Entry{Row: b.Row, Coeff: fld.Mul(scale, b.Coeff)})
			}
			j++
		default:
			i++
			j++
			if binary {
				continue // 1 + 1 = 0
			}
			sum := fld.Add(a.Coeff, fld.Mul(scale, b.Coeff))
			if !fld.IsZero(sum) {
				out = append(out, Entry{Row: a.Row, Coeff: sum})
			}
		}
	}
	out = append(out, dst[i:]...)
	for ; j < len(src); j++ {
		if binary {
			out = append(out, src[j])
		} else {
			out = append(out, Entry{Row: src[j].Row, Coeff: fld.Mul(scale, src[j].Coeff)})
		}
	}

	return out
}

// normalize sorts c by row, merges duplicate rows and drops zeros, in place.
func normalize(fld field.Field, c Column) Column {
	slices.SortStableFunc(c, func(a, b Entry) int { return a.Row - b.Row })
	out := c[:0]
	for _, e := range c {
		e.Coeff = fld.Add(e.Coeff, field.Zero) // canonical residue
		if n := len(out); n > 0 && out[n-1].Row == e.Row {
			out[n-1].Coeff = fld.Add(out[n-1].Coeff, e.Coeff)
			if fld.IsZero(out[n-1].Coeff) {
				out = out[:n-1]
			}
			continue
		}
		if !fld.IsZero(e.Coeff) {
			out = append(out, e)
		}
	}

	return out
}

// Workspace is per-goroutine scratch storage for AddColumn.
type Workspace struct {
	buf Column
}

// NewWorkspace returns a workspace with room for capHint entries.
func NewWorkspace(capHint int) *Workspace {
	return &Workspace{buf: make(Column, 0, capHint)}
}

// Swap replaces *c with dst + scale·src, recycling the old storage of *c as
// the next scratch buffer. src must not share storage with *c.
func (ws *Workspace) Swap(fld field.Field, c *Column, src Column, scale field.Coeff) {
	res := AddInto(fld, *c, src, scale, ws.buf)
	ws.buf = (*c)[:0]
	*c = res
}
