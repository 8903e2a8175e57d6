// SPDX-License-Identifier: MIT

package filtration

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtda/simplex"
)

// Complex is a set of simplices organised by dimension. It is not safe for
// concurrent mutation; builders merge their per-worker output before adding.
type Complex struct {
	byDim [][]simplex.Simplex      // byDim[d] holds the d-simplices in insertion order
	seen  map[simplex.Key]struct{} // vertex-set identity, for duplicate detection
}

// NewComplex returns an empty complex.
func NewComplex() *Complex {
	return &Complex{seen: make(map[simplex.Key]struct{})}
}

// Add inserts s. Closure is not checked here; Order verifies it.
//
// Errors: ErrInvalidInput for a zero Simplex, ErrDuplicateSimplex when the
// vertex set is already present.
func (c *Complex) Add(s simplex.Simplex) error {
	if !s.IsValid() {
		return fmt.Errorf("Add: %w", ErrInvalidInput)
	}
	k := s.Key()
	if _, dup := c.seen[k]; dup {
		return fmt.Errorf("Add %v: %w", s, ErrDuplicateSimplex)
	}
	c.seen[k] = struct{}{}
	d := s.Dim()
	for len(c.byDim) <= d {
		c.byDim = append(c.byDim, nil)
	}
	c.byDim[d] = append(c.byDim[d], s)

	return nil
}

// Len returns the total number of simplices.
func (c *Complex) Len() int { return len(c.seen) }

// MaxDim returns the highest dimension present, or -1 for an empty complex.
func (c *Complex) MaxDim() int {
	for d := len(c.byDim) - 1; d >= 0; d-- {
		if len(c.byDim[d]) > 0 {
			return d
		}
	}

	return -1
}

// Count returns the number of d-simplices.
func (c *Complex) Count(d int) int {
	if d < 0 || d >= len(c.byDim) {
		return 0
	}

	return len(c.byDim[d])
}

// Simplices returns a copy of the d-simplices in insertion order.
func (c *Complex) Simplices(d int) []simplex.Simplex {
	if d < 0 || d >= len(c.byDim) {
		return nil
	}
	out := make([]simplex.Simplex, len(c.byDim[d]))
	copy(out, c.byDim[d])

	return out
}

// Contains reports whether the vertex set of s is present.
func (c *Complex) Contains(s simplex.Simplex) bool {
	_, ok := c.seen[s.Key()]

	return ok
}

// FromSimplices builds a complex from an explicit filtration. Unlike Add it
// validates the filtration up front:
//   - every value is finite,
//   - no vertex set repeats,
//   - every codimension-1 face is present (closure),
//   - every face value is ≤ the coface value (monotonicity).
//
// Errors: ErrInvalidInput or ErrDuplicateSimplex, naming the offending simplex.
//
// Complexity: O(N·k) expected.
func FromSimplices(simplices []simplex.Simplex) (*Complex, error) {
	c := NewComplex()
	values := make(map[simplex.Key]float64, len(simplices))
	for i, s := range simplices {
		if !s.IsValid() {
			return nil, fmt.Errorf("FromSimplices: #%d: %w", i, ErrInvalidInput)
		}
		if math.IsInf(s.Value(), 0) || math.IsNaN(s.Value()) {
			return nil, fmt.Errorf("FromSimplices: #%d %v: non-finite value: %w", i, s, ErrInvalidInput)
		}
		if err := c.Add(s); err != nil {
			return nil, fmt.Errorf("FromSimplices: #%d: %w", i, err)
		}
		values[s.Key()] = s.Value()
	}

	for i, s := range simplices {
		for j, fk := range s.FaceKeys() {
			fv, ok := values[fk]
			if !ok {
				return nil, fmt.Errorf("FromSimplices: #%d %v: missing face omitting vertex %d: %w",
					i, s, s.Vertex(j), ErrInvalidInput)
			}
			if fv > s.Value() {
				return nil, fmt.Errorf("FromSimplices: #%d %v: face value %g exceeds coface: %w",
					i, s, fv, ErrInvalidInput)
			}
		}
	}

	return c, nil
}
