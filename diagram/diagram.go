// SPDX-License-Identifier: MIT

package diagram

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/biogo/store/interval"
	"github.com/katalvlaran/lvtda/boundary"
	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/reduce"
)

// Diagram is the read-only persistence diagram of one filtration.
type Diagram struct {
	f      *filtration.Filtration
	pairs  []Pair                    // every pair, by birth index
	byDim  map[int][]Interval        // after filtering, sorted
	trees  map[int]*interval.IntTree // unfiltered bars per dimension, index space
	maxDim int
}

// bar is an index-space interval [start, end) stored in the tree.
type bar struct {
	start, end int
	id         uintptr
}

func (b bar) Overlap(r interval.IntRange) bool { return b.start < r.End && r.Start < b.end }
func (b bar) Range() interval.IntRange         { return interval.IntRange{Start: b.start, End: b.end} }
func (b bar) ID() uintptr                      { return b.id }

// stab queries the bars containing one index.
type stab int

func (s stab) Overlap(r interval.IntRange) bool { return r.Start <= int(s) && int(s) < r.End }

// Extract reads the pivot table of r into pairs and intervals. When r kept
// representatives, each interval carries its cycle and, for finite bars,
// the chain that kills it.
//
// Errors: ErrNilInput, ErrSizeMismatch, ErrInconsistentPairing (an index
// paired twice or a nonzero column without a pivot entry).
//
// Complexity: O(N log N) for N simplices.
func Extract(f *filtration.Filtration, r *reduce.Result, opts ...Option) (*Diagram, error) {
	if f == nil || r == nil {
		return nil, ErrNilInput
	}
	n := f.Len()
	if r.Len() != n {
		return nil, fmt.Errorf("Extract: %d simplices, %d columns: %w", n, r.Len(), ErrSizeMismatch)
	}

	isDeath := make([]bool, n)
	for i := 0; i < n; i++ {
		if j := r.DeathOf(i); j >= 0 {
			isDeath[j] = true
		}
	}
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		if isDeath[i] {
			continue
		}
		j := r.DeathOf(i)
		if j < 0 && r.Low(i) >= 0 {
			return nil, fmt.Errorf("Extract: column %d has low %d but no pivot entry: %w", i, r.Low(i), ErrInconsistentPairing)
		}
		if j < 0 {
			j = Infinite
		}
		pairs = append(pairs, Pair{Dim: f.Dim(i), Birth: i, Death: j})
	}

	var reps func(Pair) (boundary.Column, boundary.Column)
	if r.HasRepresentatives() {
		reps = func(p Pair) (boundary.Column, boundary.Column) {
			if p.IsInfinite() {
				return r.Chain(p.Birth), nil
			}
			return r.Column(p.Death), r.Chain(p.Death)
		}
	}

	return assemble(f, pairs, reps, opts)
}

// FromPairs builds a diagram from a pairing computed elsewhere, e.g. by
// union-find. Every index of f must appear in exactly one pair, the death
// of a finite pair must come after its birth, and Dim must match the birth
// simplex.
//
// Errors: ErrNilInput, ErrInconsistentPairing.
func FromPairs(f *filtration.Filtration, pairs []Pair, opts ...Option) (*Diagram, error) {
	if f == nil {
		return nil, ErrNilInput
	}
	sorted := slices.Clone(pairs)
	slices.SortFunc(sorted, func(a, b Pair) int { return cmp.Compare(a.Birth, b.Birth) })

	return assemble(f, sorted, nil, opts)
}

// assemble validates pairs (in birth-index order) and builds the diagram.
func assemble(f *filtration.Filtration, pairs []Pair, reps func(Pair) (boundary.Column, boundary.Column), opts []Option) (*Diagram, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	n := f.Len()
	d := &Diagram{
		f:      f,
		pairs:  pairs,
		byDim:  make(map[int][]Interval),
		trees:  make(map[int]*interval.IntTree),
		maxDim: -1,
	}

	seen := make([]bool, n)
	mark := func(i int) error {
		if i < 0 || i >= n || seen[i] {
			return fmt.Errorf("index %d: %w", i, ErrInconsistentPairing)
		}
		seen[i] = true
		return nil
	}
	for k, p := range pairs {
		if err := mark(p.Birth); err != nil {
			return nil, fmt.Errorf("pair %d: %w", k, err)
		}
		end := n
		iv := Interval{Dim: p.Dim, Birth: f.Value(p.Birth), Death: math.Inf(1), BirthIndex: p.Birth, DeathIndex: Infinite}
		if !p.IsInfinite() {
			if err := mark(p.Death); err != nil {
				return nil, fmt.Errorf("pair %d: %w", k, err)
			}
			if p.Death <= p.Birth {
				return nil, fmt.Errorf("pair %d: death %d before birth %d: %w", k, p.Death, p.Birth, ErrInconsistentPairing)
			}
			end, iv.Death, iv.DeathIndex = p.Death, f.Value(p.Death), p.Death
		}
		if p.Dim != f.Dim(p.Birth) {
			return nil, fmt.Errorf("pair %d: dim %d, simplex has %d: %w", k, p.Dim, f.Dim(p.Birth), ErrInconsistentPairing)
		}
		if reps != nil {
			iv.Cycle, iv.Chain = reps(p)
		}
		d.maxDim = max(d.maxDim, p.Dim)

		tree := d.trees[p.Dim]
		if tree == nil {
			tree = &interval.IntTree{}
			d.trees[p.Dim] = tree
		}
		if err := tree.Insert(bar{start: p.Birth, end: end, id: uintptr(k + 1)}, false); err != nil {
			return nil, fmt.Errorf("bar [%d,%d): %w", p.Birth, end, err)
		}

		if cfg.filter && !iv.IsInfinite() && iv.Persistence() <= cfg.eps {
			continue
		}
		d.byDim[p.Dim] = append(d.byDim[p.Dim], iv)
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("index %d unpaired: %w", i, ErrInconsistentPairing)
		}
	}

	for dim, ivs := range d.byDim {
		slices.SortStableFunc(ivs, func(a, b Interval) int {
			if c := cmp.Compare(a.Birth, b.Birth); c != 0 {
				return c
			}
			return cmp.Compare(a.BirthIndex, b.BirthIndex)
		})
		d.byDim[dim] = ivs
	}

	return d, nil
}

// Len returns the number of pairs, finite plus essential.
func (d *Diagram) Len() int { return len(d.pairs) }

// Pairs returns every pair in birth-index order, unfiltered.
func (d *Diagram) Pairs() []Pair { return slices.Clone(d.pairs) }

// MaxDim returns the highest dimension with a pair, or -1.
func (d *Diagram) MaxDim() int { return d.maxDim }

// Dims returns the dimensions that have at least one interval after
// filtering, ascending.
func (d *Diagram) Dims() []int {
	out := make([]int, 0, len(d.byDim))
	for dim := range d.byDim {
		out = append(out, dim)
	}
	slices.Sort(out)

	return out
}

// Intervals returns a copy of the bars of dimension dim, sorted by birth
// value then birth index.
func (d *Diagram) Intervals(dim int) []Interval { return slices.Clone(d.byDim[dim]) }

// Essential returns the number of infinite bars in dimension dim.
func (d *Diagram) Essential(dim int) int {
	c := 0
	for _, iv := range d.byDim[dim] {
		if iv.IsInfinite() {
			c++
		}
	}

	return c
}

// Betti returns the number of dim-dimensional classes alive at value t.
func (d *Diagram) Betti(dim int, t float64) int {
	tree := d.trees[dim]
	k := d.f.CountUpTo(t)
	if tree == nil || k == 0 {
		return 0
	}

	return len(tree.Get(stab(k - 1)))
}

// BettiNumbers returns Betti(0..MaxDim, t).
func (d *Diagram) BettiNumbers(t float64) []int {
	out := make([]int, d.maxDim+1)
	for dim := range out {
		out[dim] = d.Betti(dim, t)
	}

	return out
}

// Filtration returns the filtration the diagram was extracted from.
func (d *Diagram) Filtration() *filtration.Filtration { return d.f }
