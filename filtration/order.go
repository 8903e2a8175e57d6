// SPDX-License-Identifier: MIT

package filtration

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/lvtda/simplex"
	"github.com/pkg/errors"
)

// Filtration is an immutable, totally ordered complex.
type Filtration struct {
	simplices []simplex.Simplex   // position == filtration index
	index     map[simplex.Key]int // vertex set -> filtration index
	faceOff   []int               // faces of i are faces[faceOff[i]:faceOff[i+1]]
	faces     []int               // face indices, face t omits vertex t
	counts    []int               // counts[d] = number of d-simplices
}

// compareKey is the order key: value, dimension, vertex tuple.
func compareKey(a, b simplex.Simplex) int {
	if c := cmp.Compare(a.Value(), b.Value()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Dim(), b.Dim()); c != 0 {
		return c
	}

	return a.Compare(b)
}

// Order sorts the complex into a Filtration and verifies that every face
// precedes its cofaces. The complex is not modified and may be discarded.
//
// Errors: ErrNilComplex; ErrOrderingViolation (stack-annotated) when a face
// is missing or sorts at or after its coface.
func Order(c *Complex) (*Filtration, error) {
	if c == nil {
		return nil, ErrNilComplex
	}
	n := c.Len()
	all := make([]simplex.Simplex, 0, n)
	for _, group := range c.byDim {
		all = append(all, group...)
	}
	slices.SortStableFunc(all, compareKey)

	return index(all)
}

// index builds the lookup tables over an already sorted slice and checks
// the face-precedes-coface invariant.
func index(all []simplex.Simplex) (*Filtration, error) {
	n := len(all)
	f := &Filtration{
		simplices: all,
		index:     make(map[simplex.Key]int, n),
		faceOff:   make([]int, n+1),
	}
	total := 0
	for i, s := range all {
		f.index[s.Key()] = i
		d := s.Dim()
		for len(f.counts) <= d {
			f.counts = append(f.counts, 0)
		}
		f.counts[d]++
		if d > 0 {
			total += d + 1
		}
	}

	f.faces = make([]int, 0, total)
	for i, s := range all {
		f.faceOff[i] = len(f.faces)
		for t, fk := range s.FaceKeys() {
			fi, ok := f.index[fk]
			if !ok {
				return nil, errors.WithStack(fmt.Errorf(
					"Order: %v at %d: face omitting vertex %d is missing: %w",
					s, i, s.Vertex(t), ErrOrderingViolation))
			}
			if fi >= i {
				return nil, errors.WithStack(fmt.Errorf(
					"Order: %v at %d: face %v at %d: %w",
					s, i, all[fi], fi, ErrOrderingViolation))
			}
			f.faces = append(f.faces, fi)
		}
	}
	f.faceOff[n] = len(f.faces)

	return f, nil
}

// Len returns N, the number of simplices.
func (f *Filtration) Len() int { return len(f.simplices) }

// At returns the simplex at filtration index i. It panics if i is out of
// range, like slice indexing.
func (f *Filtration) At(i int) simplex.Simplex { return f.simplices[i] }

// Value returns the filtration value of simplex i.
func (f *Filtration) Value(i int) float64 { return f.simplices[i].Value() }

// Dim returns the dimension of simplex i.
func (f *Filtration) Dim(i int) int { return f.simplices[i].Dim() }

// IndexOf returns the filtration index of the vertex set of s.
func (f *Filtration) IndexOf(s simplex.Simplex) (int, bool) {
	i, ok := f.index[s.Key()]

	return i, ok
}

// MaxDim returns the highest dimension present, or -1 when empty.
func (f *Filtration) MaxDim() int { return len(f.counts) - 1 }

// Count returns the number of d-simplices.
func (f *Filtration) Count(d int) int {
	if d < 0 || d >= len(f.counts) {
		return 0
	}

	return f.counts[d]
}

// FaceIndices returns the filtration indices of the codimension-1 faces of
// simplex i, entry t being the face that omits Vertex(t). The result is a
// fresh slice.
func (f *Filtration) FaceIndices(i int) []int {
	return slices.Clone(f.faces[f.faceOff[i]:f.faceOff[i+1]])
}

// faceView is FaceIndices without the copy, for in-package hot loops.
func (f *Filtration) faceView(i int) []int {
	return f.faces[f.faceOff[i]:f.faceOff[i+1]]
}

// CountUpTo returns the number of simplices whose value is ≤ t. Because
// values are non-decreasing along the order, these are exactly the indices
// [0, CountUpTo(t)).
func (f *Filtration) CountUpTo(t float64) int {
	return sort.Search(len(f.simplices), func(i int) bool {
		return f.simplices[i].Value() > t
	})
}

// Skeleton returns, in filtration order, the indices of simplices of
// dimension ≤ dim with value ≤ scale.
func (f *Filtration) Skeleton(dim int, scale float64) []int {
	var out []int
	for i, end := 0, f.CountUpTo(scale); i < end; i++ {
		if f.simplices[i].Dim() <= dim {
			out = append(out, i)
		}
	}

	return out
}

// Validate re-checks the face-precedes-coface invariant over the stored
// face table. Order already guarantees it; Validate is for callers that
// want a cheap independent assertion.
func (f *Filtration) Validate() error {
	for i := range f.simplices {
		for _, fi := range f.faceView(i) {
			if fi >= i {
				return errors.WithStack(fmt.Errorf("Validate: simplex %d face %d: %w", i, fi, ErrOrderingViolation))
			}
		}
	}

	return nil
}
