package components_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvtda/boundary"
	"github.com/katalvlaran/lvtda/components"
	"github.com/katalvlaran/lvtda/diagram"
	"github.com/katalvlaran/lvtda/field"
	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/reduce"
	"github.com/katalvlaran/lvtda/rips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ripsFiltration(t *testing.T, n int) *filtration.Filtration {
	t.Helper()
	c, err := rips.BuildFunc(context.Background(), n, func(i, j int) float64 {
		return math.Abs(math.Sin(float64(i*13+j*7))) * float64(1+(i+j)%3)
	}, rips.WithMaxDim(2))
	require.NoError(t, err)
	f, err := filtration.Order(c)
	require.NoError(t, err)

	return f
}

// TestPersistence_Path: a path 0-1-2-3 whose edges appear from the right.
func TestPersistence_Path(t *testing.T) {
	inf := math.Inf(1)
	c, err := rips.BuildFunc(context.Background(), 4, func(i, j int) float64 {
		if j-i == 1 {
			return float64(4 - i) // {0,1}=4, {1,2}=3, {2,3}=2
		}
		return inf
	})
	require.NoError(t, err)
	f, err := filtration.Order(c)
	require.NoError(t, err)

	bars, err := components.Persistence(f)
	require.NoError(t, err)
	require.Len(t, bars, 4)
	assert.True(t, bars[0].IsInfinite())
	assert.Equal(t, 0, bars[0].BirthIndex)

	finite := 0
	for _, b := range bars[1:] {
		require.False(t, b.IsInfinite())
		finite++
	}
	assert.Equal(t, 3, finite)
	// {2,3} joins first and kills vertex 3; {1,2} kills 2; {0,1} kills 1.
	assert.Equal(t, 2.0, bars[3].Death)
	assert.Equal(t, 3.0, bars[2].Death)
	assert.Equal(t, 4.0, bars[1].Death)
}

// TestCheck_AgreesWithReduction is the H0 cross-check on a Rips filtration.
func TestCheck_AgreesWithReduction(t *testing.T) {
	f := ripsFiltration(t, 12)
	for _, fld := range []field.Field{field.GF2, field.MustPrime(3)} {
		m, err := boundary.Build(f, fld)
		require.NoError(t, err)
		r, err := reduce.Reduce(context.Background(), m)
		require.NoError(t, err)
		d, err := diagram.Extract(f, r)
		require.NoError(t, err)

		require.NoError(t, components.Check(f, d))

		bars, err := components.Persistence(f)
		require.NoError(t, err)
		h0 := d.Intervals(0)
		require.Len(t, h0, len(bars))
		for k := range bars {
			assert.Equal(t, bars[k].BirthIndex, h0[k].BirthIndex)
			assert.Equal(t, bars[k].DeathIndex, h0[k].DeathIndex)
		}
	}
}

func TestErrors(t *testing.T) {
	_, err := components.Pairs(nil)
	assert.ErrorIs(t, err, components.ErrNilInput)
	assert.ErrorIs(t, components.Check(ripsFiltration(t, 3), nil), components.ErrNilInput)
}

// TestGraphPairs matches a full reduction on a 1-dimensional filtration.
func TestGraphPairs(t *testing.T) {
	c, err := rips.BuildFunc(context.Background(), 7, func(i, j int) float64 {
		return float64((i*5+j*3)%11) + 1
	}, rips.WithMaxDim(1))
	require.NoError(t, err)
	f, err := filtration.Order(c)
	require.NoError(t, err)

	pairs, err := components.GraphPairs(f)
	require.NoError(t, err)
	fast, err := diagram.FromPairs(f, pairs)
	require.NoError(t, err)

	m, err := boundary.Build(f, field.GF2)
	require.NoError(t, err)
	r, err := reduce.Reduce(context.Background(), m)
	require.NoError(t, err)
	full, err := diagram.Extract(f, r)
	require.NoError(t, err)

	assert.Equal(t, full.Pairs(), fast.Pairs())
	assert.Equal(t, 15, len(fast.Intervals(1)), "21 edges, 6 spanning")

	_, err = components.GraphPairs(ripsFiltration(t, 4))
	assert.ErrorIs(t, err, components.ErrNotGraph)
}
