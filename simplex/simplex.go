// SPDX-License-Identifier: MIT

package simplex

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Key is a compact, comparable encoding of a vertex set. Two simplices have
// the same Key iff they are Equal, so Key is suitable as a map key.
type Key string

// Simplex is an immutable set of vertex indices with a filtration value.
// The zero value is not a valid simplex; construct with New or MustNew.
//
// The vertices slice is owned by the Simplex and never handed out, so values
// may be copied freely and shared across goroutines.
type Simplex struct {
	vertices []int   // strictly ascending, len ≥ 1
	value    float64 // filtration value
}

// New builds a simplex from vertices, sorting and de-duplicating them.
//
// Errors:
//   - ErrEmpty when no vertex is given.
//   - ErrNegativeVertex when any vertex index is < 0.
//   - ErrInvalidValue when value is NaN.
//
// Complexity: O(k log k) for k vertices.
func New(value float64, vertices ...int) (Simplex, error) {
	if len(vertices) == 0 {
		return Simplex{}, ErrEmpty
	}
	if math.IsNaN(value) {
		return Simplex{}, ErrInvalidValue
	}
	vs := make([]int, len(vertices)) // private copy; caller keeps its slice
	copy(vs, vertices)
	slices.Sort(vs)
	if vs[0] < 0 {
		return Simplex{}, fmt.Errorf("New: vertex %d: %w", vs[0], ErrNegativeVertex)
	}
	vs = slices.Compact(vs)

	return Simplex{vertices: vs, value: value}, nil
}

// MustNew is New that panics on error. Intended for literals in tests and
// examples where the vertex list is known to be valid.
func MustNew(value float64, vertices ...int) Simplex {
	s, err := New(value, vertices...)
	if err != nil {
		panic(err)
	}

	return s
}

// fromSorted wraps an already sorted, duplicate-free slice without copying.
// The caller transfers ownership of vs.
func fromSorted(value float64, vs []int) Simplex {
	return Simplex{vertices: vs, value: value}
}

// Dim returns the dimension (number of vertices minus one).
func (s Simplex) Dim() int { return len(s.vertices) - 1 }

// Len returns the number of vertices.
func (s Simplex) Len() int { return len(s.vertices) }

// Value returns the filtration value.
func (s Simplex) Value() float64 { return s.value }

// Vertex returns the i-th smallest vertex.
func (s Simplex) Vertex(i int) int { return s.vertices[i] }

// Vertices returns a copy of the sorted vertex list.
func (s Simplex) Vertices() []int {
	out := make([]int, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// WithValue returns the same vertex set carrying value v. The vertex storage
// is shared, which is safe because it is never mutated.
func (s Simplex) WithValue(v float64) Simplex {
	return Simplex{vertices: s.vertices, value: v}
}

// IsValid reports whether s was produced by a constructor.
func (s Simplex) IsValid() bool { return len(s.vertices) > 0 }

// Key returns the map key for the vertex set.
func (s Simplex) Key() Key {
	return keyOf(s.vertices)
}

// keyOf encodes a sorted vertex list as varints.
func keyOf(vs []int) Key {
	buf := make([]byte, 0, len(vs)*2)
	for _, v := range vs {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return Key(buf)
}

// Equal reports whether s and o have the same vertex set.
func (s Simplex) Equal(o Simplex) bool {
	return slices.Equal(s.vertices, o.vertices)
}

// Compare orders vertex tuples lexicographically; a proper prefix sorts first.
// It returns -1, 0 or +1. Filtration values are ignored.
func (s Simplex) Compare(o Simplex) int {
	return slices.Compare(s.vertices, o.vertices)
}

// Contains reports whether every vertex of o is a vertex of s.
// Complexity: O(|s|+|o|) merge walk.
func (s Simplex) Contains(o Simplex) bool {
	i := 0
	for _, v := range o.vertices {
		for i < len(s.vertices) && s.vertices[i] < v {
			i++
		}
		if i == len(s.vertices) || s.vertices[i] != v {
			return false
		}
	}

	return true
}

// Faces returns the codimension-1 faces, face i omitting Vertex(i). Faces of
// a vertex are empty. Returned faces carry value 0: they identify vertex sets
// for lookup, not filtration entries.
func (s Simplex) Faces() []Simplex {
	k := len(s.vertices)
	if k <= 1 {
		return nil
	}
	out := make([]Simplex, k)
	for i := 0; i < k; i++ {
		vs := make([]int, 0, k-1)
		vs = append(vs, s.vertices[:i]...)
		vs = append(vs, s.vertices[i+1:]...)
		out[i] = fromSorted(0, vs)
	}

	return out
}

// FaceKeys returns the keys of Faces() in the same order without building
// intermediate Simplex values.
func (s Simplex) FaceKeys() []Key {
	k := len(s.vertices)
	if k <= 1 {
		return nil
	}
	out := make([]Key, k)
	scratch := make([]int, 0, k-1)
	for i := 0; i < k; i++ {
		scratch = scratch[:0]
		scratch = append(scratch, s.vertices[:i]...)
		scratch = append(scratch, s.vertices[i+1:]...)
		out[i] = keyOf(scratch)
	}

	return out
}

// String renders the simplex as "[v0 v1 ...]@value".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString("]@")
	b.WriteString(strconv.FormatFloat(s.value, 'g', -1, 64))

	return b.String()
}
