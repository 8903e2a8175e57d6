package rips_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/matrix"
	"github.com/katalvlaran/lvtda/rips"
	"github.com/katalvlaran/lvtda/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func unitSquare(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := matrix.Euclidean(mat.NewDense(4, 2, []float64{0, 0, 1, 0, 1, 1, 0, 1}))
	require.NoError(t, err)

	return d
}

// TestBuild_UnitSquare: 4 vertices, 4 sides of length 1 and 2 diagonals of √2.
func TestBuild_UnitSquare(t *testing.T) {
	c, err := rips.Build(context.Background(), unitSquare(t), rips.WithMaxDim(1))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Count(0))
	require.Equal(t, 6, c.Count(1))
	assert.Equal(t, 0, c.Count(2))

	var ones, diags int
	for _, e := range c.Simplices(1) {
		switch {
		case math.Abs(e.Value()-1) < 1e-12:
			ones++
		case math.Abs(e.Value()-math.Sqrt2) < 1e-12:
			diags++
		}
	}
	assert.Equal(t, 4, ones)
	assert.Equal(t, 2, diags)
	for _, v := range c.Simplices(0) {
		assert.Equal(t, 0.0, v.Value())
	}
}

func TestBuild_ScaleAndDim(t *testing.T) {
	d := unitSquare(t)

	c, err := rips.Build(context.Background(), d, rips.WithMaxDim(2), rips.WithMaxScale(1))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Count(1), "diagonals excluded")
	assert.Equal(t, 0, c.Count(2), "no triangle without a diagonal")

	c, err = rips.Build(context.Background(), d, rips.WithMaxDim(3))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Count(2))
	assert.Equal(t, 1, c.Count(3))
	tet := c.Simplices(3)[0]
	assert.InDelta(t, math.Sqrt2, tet.Value(), 1e-12)

	// The result is closed and monotone: ordering must succeed.
	_, err = filtration.Order(c)
	assert.NoError(t, err)
}

func TestBuild_InfiniteMeansNoEdge(t *testing.T) {
	inf := math.Inf(1)
	d, _ := matrix.FromRows([][]float64{{0, 1, inf}, {1, 0, 2}, {inf, 2, 0}})
	c, err := rips.Build(context.Background(), d, rips.WithMaxDim(2))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Count(1))
	assert.False(t, c.Contains(simplex.MustNew(0, 0, 2)))
	assert.Equal(t, 0, c.Count(2))
}

// TestBuild_DefaultScaleUnbounded admits arbitrarily large finite distances
// when no scale is given.
func TestBuild_DefaultScaleUnbounded(t *testing.T) {
	d, _ := matrix.FromRows([][]float64{{0, 1e300}, {1e300, 0}})
	c, err := rips.Build(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count(1))
	assert.True(t, c.Contains(simplex.MustNew(1e300, 0, 1)))
}

func TestBuild_Weights(t *testing.T) {
	d := unitSquare(t)
	c, err := rips.Build(context.Background(), d,
		rips.WithWeights([]float64{0, 0.5, 3, 0}), rips.WithMaxScale(2))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count(0), "vertex 2 weight exceeds the scale")
	for _, v := range c.Simplices(0) {
		if v.Vertex(0) == 1 {
			assert.Equal(t, 0.5, v.Value())
		}
	}
	f, err := filtration.Order(c)
	require.NoError(t, err)
	i, ok := f.IndexOf(simplex.MustNew(0, 0, 1))
	require.True(t, ok)
	assert.Equal(t, 1.0, f.Value(i))
}

// TestBuild_WorkersDeterministic compares sequential and concurrent output.
func TestBuild_WorkersDeterministic(t *testing.T) {
	const n = 9
	fn := func(i, j int) float64 { return math.Abs(math.Sin(float64(i*7+j*3))) + float64(j-i)/10 }
	c1, err := rips.BuildFunc(context.Background(), n, fn, rips.WithMaxDim(3), rips.WithWorkers(1))
	require.NoError(t, err)
	c4, err := rips.BuildFunc(context.Background(), n, fn, rips.WithMaxDim(3), rips.WithWorkers(4))
	require.NoError(t, err)

	for d := 0; d <= 3; d++ {
		a, b := c1.Simplices(d), c4.Simplices(d)
		require.Len(t, b, len(a))
		for i := range a {
			assert.True(t, a[i].Equal(b[i]))
			assert.Equal(t, a[i].Value(), b[i].Value())
		}
	}
	assert.Equal(t, 9+36+84+126, c1.Len(), "complete graph on 9 vertices up to dim 3")
}

func TestBuild_Ceiling(t *testing.T) {
	_, err := rips.Build(context.Background(), unitSquare(t), rips.WithMaxDim(2), rips.WithMaxSimplices(10))
	assert.ErrorIs(t, err, rips.ErrResourceExceeded)

	c, err := rips.Build(context.Background(), unitSquare(t), rips.WithMaxDim(2), rips.WithMaxSimplices(14))
	require.NoError(t, err)
	assert.Equal(t, 14, c.Len())
}

func TestBuild_InvalidInput(t *testing.T) {
	ctx := context.Background()
	d := unitSquare(t)

	asym, _ := matrix.FromRows([][]float64{{0, 1}, {2, 0}})
	neg, _ := matrix.FromRows([][]float64{{0, -1}, {-1, 0}})
	cases := map[string]struct {
		m    matrix.Matrix
		opts []rips.Option
	}{
		"asymmetric":      {asym, nil},
		"negative":        {neg, nil},
		"nil":             {nil, nil},
		"negative dim":    {d, []rips.Option{rips.WithMaxDim(-1)}},
		"negative scale":  {d, []rips.Option{rips.WithMaxScale(-0.5)}},
		"nan scale":       {d, []rips.Option{rips.WithMaxScale(math.NaN())}},
		"weight mismatch": {d, []rips.Option{rips.WithWeights([]float64{0, 0})}},
		"negative weight": {d, []rips.Option{rips.WithWeights([]float64{0, 0, -1, 0})}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rips.Build(ctx, tc.m, tc.opts...)
			assert.ErrorIs(t, err, rips.ErrInvalidInput)
		})
	}

	_, err := rips.Build(ctx, neg)
	assert.ErrorIs(t, err, matrix.ErrNegativeDistance)
	assert.Contains(t, err.Error(), "d(0,1)")

	_, err = rips.BuildFunc(ctx, -1, func(i, j int) float64 { return 1 })
	assert.ErrorIs(t, err, rips.ErrInvalidInput)
	_, err = rips.BuildFunc(ctx, 3, func(i, j int) float64 { return math.NaN() })
	assert.ErrorIs(t, err, rips.ErrInvalidInput)
}

func TestBuildFunc_Empty(t *testing.T) {
	c, err := rips.BuildFunc(context.Background(), 0, func(i, j int) float64 { return 0 })
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rips.Build(ctx, unitSquare(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { rips.WithWorkers(0) })
	assert.Panics(t, func() { rips.WithMaxSimplices(-1) })
}
