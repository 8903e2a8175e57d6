// SPDX-License-Identifier: MIT

package components

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvtda/diagram"
	"github.com/katalvlaran/lvtda/filtration"
)

// forest is a disjoint-set forest over filtration indices. Only vertex
// indices are ever touched; the rest of the slots stay unused.
type forest struct {
	parent []int
	rank   []int
	oldest []int // per root: smallest vertex index in the component
}

func newForest(n int) *forest {
	fs := &forest{parent: make([]int, n), rank: make([]int, n), oldest: make([]int, n)}
	for i := range fs.parent {
		fs.parent[i] = i
		fs.oldest[i] = i
	}

	return fs
}

// find walks to the root with path halving.
func (fs *forest) find(u int) int {
	for fs.parent[u] != u {
		fs.parent[u] = fs.parent[fs.parent[u]]
		u = fs.parent[u]
	}

	return u
}

// union merges the sets of roots ru != rv by rank and returns the oldest
// vertex of the component that dies.
func (fs *forest) union(ru, rv int) int {
	young := max(fs.oldest[ru], fs.oldest[rv])
	elder := min(fs.oldest[ru], fs.oldest[rv])
	if fs.rank[ru] < fs.rank[rv] {
		ru, rv = rv, ru
	}
	fs.parent[rv] = ru
	if fs.rank[ru] == fs.rank[rv] {
		fs.rank[ru]++
	}
	fs.oldest[ru] = elder

	return young
}

// Pairs returns the 0-dimensional persistence pairs of f in birth-index
// order.
func Pairs(f *filtration.Filtration) ([]diagram.Pair, error) {
	if f == nil {
		return nil, ErrNilInput
	}
	out, _ := sweep(f)

	return out, nil
}

// GraphPairs returns the complete pairing of a filtration of dimension at
// most 1: the H0 pairs plus one essential H1 pair for every edge that
// closes a cycle. Such an edge is never killed because no 2-simplex exists.
//
// Errors: ErrNilInput, ErrNotGraph when f has simplices of dimension ≥ 2.
func GraphPairs(f *filtration.Filtration) ([]diagram.Pair, error) {
	if f == nil {
		return nil, ErrNilInput
	}
	if f.MaxDim() > 1 {
		return nil, fmt.Errorf("GraphPairs: max dim %d: %w", f.MaxDim(), ErrNotGraph)
	}
	h0, kills := sweep(f)
	out := make([]diagram.Pair, 0, f.Len())
	k := 0
	for i := 0; i < f.Len(); i++ {
		switch {
		case f.Dim(i) == 0:
			out = append(out, h0[k])
			k++
		case !kills[i]:
			out = append(out, diagram.Pair{Dim: 1, Birth: i, Death: diagram.Infinite})
		}
	}

	return out, nil
}

// sweep runs the elder-rule union-find and reports which edges kill a
// component.
func sweep(f *filtration.Filtration) ([]diagram.Pair, []bool) {
	n := f.Len()
	fs := newForest(n)
	death := make([]int, n)
	for i := range death {
		death[i] = diagram.Infinite
	}
	kills := make([]bool, n)
	for j := 0; j < n; j++ {
		if f.Dim(j) != 1 {
			continue
		}
		ends := f.FaceIndices(j)
		ru, rv := fs.find(ends[0]), fs.find(ends[1])
		if ru == rv {
			continue // closes a cycle
		}
		death[fs.union(ru, rv)] = j
		kills[j] = true
	}

	out := make([]diagram.Pair, 0, f.Count(0))
	for i := 0; i < n; i++ {
		if f.Dim(i) == 0 {
			out = append(out, diagram.Pair{Dim: 0, Birth: i, Death: death[i]})
		}
	}

	return out, kills
}

// Persistence returns the H0 bars of f, sorted by birth value then birth
// index like diagram.Diagram.Intervals.
func Persistence(f *filtration.Filtration) ([]diagram.Interval, error) {
	pairs, err := Pairs(f)
	if err != nil {
		return nil, err
	}
	out := make([]diagram.Interval, len(pairs))
	for k, p := range pairs {
		iv := diagram.Interval{Dim: 0, Birth: f.Value(p.Birth), Death: math.Inf(1), BirthIndex: p.Birth, DeathIndex: p.Death}
		if !p.IsInfinite() {
			iv.Death = f.Value(p.Death)
		}
		out[k] = iv
	}
	slices.SortStableFunc(out, func(a, b diagram.Interval) int {
		if c := cmp.Compare(a.Birth, b.Birth); c != 0 {
			return c
		}
		return cmp.Compare(a.BirthIndex, b.BirthIndex)
	})

	return out, nil
}

// Check compares the unfiltered H0 pairs of d with the union-find pairing.
//
// Errors: ErrNilInput; ErrMismatch naming the first differing vertex.
func Check(f *filtration.Filtration, d *diagram.Diagram) error {
	if d == nil {
		return ErrNilInput
	}
	want, err := Pairs(f)
	if err != nil {
		return err
	}
	var got []diagram.Pair
	for _, p := range d.Pairs() {
		if p.Dim == 0 {
			got = append(got, p)
		}
	}
	if len(got) != len(want) {
		return fmt.Errorf("Check: %d H0 pairs, want %d: %w", len(got), len(want), ErrMismatch)
	}
	for k := range want {
		if got[k] != want[k] {
			return fmt.Errorf("Check: vertex %d dies at %d, want %d: %w",
				want[k].Birth, got[k].Death, want[k].Death, ErrMismatch)
		}
	}

	return nil
}
