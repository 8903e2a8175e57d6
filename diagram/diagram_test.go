package diagram_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvtda/boundary"
	"github.com/katalvlaran/lvtda/diagram"
	"github.com/katalvlaran/lvtda/field"
	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/reduce"
	"github.com/katalvlaran/lvtda/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeline orders, assembles and reduces an explicit filtration.
func pipeline(t *testing.T, ss []simplex.Simplex, ropts ...reduce.Option) (*filtration.Filtration, *reduce.Result) {
	t.Helper()
	c, err := filtration.FromSimplices(ss)
	require.NoError(t, err)
	f, err := filtration.Order(c)
	require.NoError(t, err)
	m, err := boundary.Build(f, field.GF2)
	require.NoError(t, err)
	r, err := reduce.Reduce(context.Background(), m, ropts...)
	require.NoError(t, err)

	return f, r
}

func triangle(tri float64) []simplex.Simplex {
	ss := []simplex.Simplex{
		simplex.MustNew(0, 0), simplex.MustNew(0, 1), simplex.MustNew(0, 2),
		simplex.MustNew(1, 0, 1), simplex.MustNew(2, 0, 2), simplex.MustNew(3, 1, 2),
	}
	if tri > 0 {
		ss = append(ss, simplex.MustNew(tri, 0, 1, 2))
	}

	return ss
}

func TestExtract_SinglePoint(t *testing.T) {
	f, r := pipeline(t, []simplex.Simplex{simplex.MustNew(0, 0)})
	d, err := diagram.Extract(f, r)
	require.NoError(t, err)

	h0 := d.Intervals(0)
	require.Len(t, h0, 1)
	assert.True(t, h0[0].IsInfinite())
	assert.True(t, math.IsInf(h0[0].Death, 1))
	assert.Equal(t, 1, d.Essential(0))
	assert.Empty(t, d.Intervals(1))
}

// TestExtract_HollowTriangle: the loop never dies without a 2-simplex.
func TestExtract_HollowTriangle(t *testing.T) {
	f, r := pipeline(t, triangle(0))
	d, err := diagram.Extract(f, r)
	require.NoError(t, err)

	h0 := d.Intervals(0)
	require.Len(t, h0, 3)
	assert.True(t, h0[0].IsInfinite())
	assert.Equal(t, 0, h0[0].BirthIndex)
	assert.Equal(t, 1.0, h0[1].Death)
	assert.Equal(t, 2.0, h0[2].Death)

	h1 := d.Intervals(1)
	require.Len(t, h1, 1)
	assert.Equal(t, 3.0, h1[0].Birth, "born when the last edge appears")
	assert.True(t, h1[0].IsInfinite())
	assert.Equal(t, []int{0, 1}, d.Dims())
	assert.Equal(t, "H1 [3, +Inf)", h1[0].String())
}

func TestExtract_FilledTriangle(t *testing.T) {
	f, r := pipeline(t, triangle(4))
	d, err := diagram.Extract(f, r)
	require.NoError(t, err)

	h1 := d.Intervals(1)
	require.Len(t, h1, 1)
	assert.Equal(t, 3.0, h1[0].Birth)
	assert.Equal(t, 4.0, h1[0].Death)
	assert.Equal(t, 6, h1[0].DeathIndex)
	assert.Equal(t, 1.0, h1[0].Persistence())
	assert.Empty(t, d.Intervals(2))
}

// TestPairs_CoverEveryIndexOnce checks the total pair count property.
func TestPairs_CoverEveryIndexOnce(t *testing.T) {
	for _, s := range []reduce.Strategy{reduce.Standard, reduce.Twist, reduce.Parallel} {
		f, r := pipeline(t, triangle(4), reduce.WithStrategy(s))
		d, err := diagram.Extract(f, r)
		require.NoError(t, err)

		seen := make(map[int]int)
		finite := 0
		for _, p := range d.Pairs() {
			seen[p.Birth]++
			if !p.IsInfinite() {
				seen[p.Death]++
				finite++
			}
		}
		assert.Len(t, seen, f.Len(), s.String())
		for i, c := range seen {
			assert.Equal(t, 1, c, "index %d", i)
		}
		assert.Equal(t, f.Len()-finite, d.Len())
	}
}

func TestZeroPersistence(t *testing.T) {
	f, r := pipeline(t, triangle(3))

	kept, err := diagram.Extract(f, r)
	require.NoError(t, err)
	require.Len(t, kept.Intervals(1), 1)
	assert.Equal(t, 0.0, kept.Intervals(1)[0].Persistence())

	dropped, err := diagram.Extract(f, r, diagram.WithDropZeroPersistence())
	require.NoError(t, err)
	assert.Empty(t, dropped.Intervals(1))
	assert.Equal(t, kept.Len(), dropped.Len(), "pairs are never filtered")

	coarse, err := diagram.Extract(f, r, diagram.WithMinPersistence(1.5))
	require.NoError(t, err)
	assert.Len(t, coarse.Intervals(0), 2, "the bar of length 1 is dropped")

	assert.Panics(t, func() { diagram.WithMinPersistence(-1) })
}

func TestBetti(t *testing.T) {
	f, r := pipeline(t, triangle(4))
	d, err := diagram.Extract(f, r)
	require.NoError(t, err)

	assert.Equal(t, 0, d.Betti(0, -1))
	assert.Equal(t, 3, d.Betti(0, 0))
	assert.Equal(t, 2, d.Betti(0, 1))
	assert.Equal(t, 1, d.Betti(0, 2.5))
	assert.Equal(t, 0, d.Betti(1, 2.9))
	assert.Equal(t, 1, d.Betti(1, 3))
	assert.Equal(t, 1, d.Betti(1, 3.5))
	assert.Equal(t, 0, d.Betti(1, 4))
	assert.Equal(t, 0, d.Betti(5, 4))
	assert.Equal(t, []int{1, 1}, d.BettiNumbers(3.5))
}

func TestSummary(t *testing.T) {
	f, r := pipeline(t, triangle(4))
	d, err := diagram.Extract(f, r)
	require.NoError(t, err)

	s, err := d.Summary(0)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 2, s.Finite)
	assert.Equal(t, 1, s.Essential)
	assert.InDelta(t, 3.0, s.TotalPersistence, 1e-12)
	assert.InDelta(t, 1.5, s.MeanPersistence, 1e-12)
	assert.InDelta(t, 1.5, s.MedianPersistence, 1e-12)
	assert.InDelta(t, 2.0, s.MaxPersistence, 1e-12)

	_, err = d.Summary(3)
	assert.ErrorIs(t, err, diagram.ErrEmptyDimension)
}

func TestRepresentatives(t *testing.T) {
	f, r := pipeline(t, triangle(4), reduce.WithRepresentatives())
	d, err := diagram.Extract(f, r)
	require.NoError(t, err)

	h1 := d.Intervals(1)[0]
	assert.Equal(t, []int{3, 4, 5}, h1.Cycle.Rows(), "the boundary of the triangle")
	assert.Equal(t, []int{6}, h1.Chain.Rows())

	essential := d.Intervals(0)[0]
	assert.Equal(t, []int{0}, essential.Cycle.Rows())
	assert.Nil(t, essential.Chain)

	f, r = pipeline(t, triangle(4))
	d, err = diagram.Extract(f, r)
	require.NoError(t, err)
	assert.Nil(t, d.Intervals(1)[0].Cycle)
}

func TestExtract_Errors(t *testing.T) {
	f, r := pipeline(t, triangle(0))
	_, err := diagram.Extract(nil, r)
	assert.ErrorIs(t, err, diagram.ErrNilInput)

	small, _ := pipeline(t, []simplex.Simplex{simplex.MustNew(0, 0)})
	_, err = diagram.Extract(small, r)
	assert.ErrorIs(t, err, diagram.ErrSizeMismatch)

	_, err = diagram.Extract(f, nil)
	assert.ErrorIs(t, err, diagram.ErrNilInput)
}

func TestFromPairs(t *testing.T) {
	f, r := pipeline(t, triangle(4))
	want, err := diagram.Extract(f, r)
	require.NoError(t, err)

	pairs := want.Pairs()
	for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
	got, err := diagram.FromPairs(f, pairs)
	require.NoError(t, err)
	assert.Equal(t, want.Pairs(), got.Pairs())
	assert.Equal(t, want.Intervals(0), got.Intervals(0))
	assert.Equal(t, want.BettiNumbers(3.5), got.BettiNumbers(3.5))

	_, err = diagram.FromPairs(f, pairs[1:])
	assert.ErrorIs(t, err, diagram.ErrInconsistentPairing, "an index is left out")

	dup := append(want.Pairs(), diagram.Pair{Dim: 0, Birth: 0, Death: diagram.Infinite})
	_, err = diagram.FromPairs(f, dup)
	assert.ErrorIs(t, err, diagram.ErrInconsistentPairing)

	_, err = diagram.FromPairs(nil, nil)
	assert.ErrorIs(t, err, diagram.ErrNilInput)
}
