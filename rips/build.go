// SPDX-License-Identifier: MIT

package rips

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/matrix"
	"github.com/katalvlaran/lvtda/simplex"
	"golang.org/x/sync/errgroup"
)

var log = logging.Logger("rips")

// DistanceFunc returns the distance between points i and j.
type DistanceFunc = matrix.DistanceFunc

// Build enumerates the Rips complex of the n×n distance structure dist.
//
// Errors: ErrInvalidInput (wrapping the matrix sentinel and coordinates),
// ErrResourceExceeded, or ctx.Err() on cancellation.
func Build(ctx context.Context, dist matrix.Matrix, opts ...Option) (*filtration.Complex, error) {
	if err := matrix.ValidateDistances(dist); err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrInvalidInput, err)
	}

	return build(ctx, dist, dist.Rows(), newConfig(opts...))
}

// BuildFunc materialises fn over n points and builds their Rips complex.
// fn is called once per unordered pair (i<j). n == 0 yields an empty complex.
func BuildFunc(ctx context.Context, n int, fn DistanceFunc, opts ...Option) (*filtration.Complex, error) {
	cfg := newConfig(opts...)
	switch {
	case n < 0:
		return nil, fmt.Errorf("BuildFunc: n=%d: %w", n, ErrInvalidInput)
	case fn == nil:
		return nil, fmt.Errorf("BuildFunc: %w: %w", ErrInvalidInput, matrix.ErrNilFunc)
	case n == 0:
		if err := validate(cfg, 0); err != nil {
			return nil, err
		}
		return filtration.NewComplex(), nil
	}
	dist, err := matrix.FromFunc(n, fn)
	if err != nil {
		return nil, fmt.Errorf("BuildFunc: %w: %w", ErrInvalidInput, err)
	}

	return build(ctx, dist, n, cfg)
}

// validate checks the data-dependent knobs against the point count.
func validate(cfg config, n int) error {
	if cfg.maxDim < 0 {
		return fmt.Errorf("maxDim=%d: %w", cfg.maxDim, ErrInvalidInput)
	}
	if math.IsNaN(cfg.maxScale) || cfg.maxScale < 0 {
		return fmt.Errorf("maxScale=%g: %w", cfg.maxScale, ErrInvalidInput)
	}
	if cfg.weights == nil {
		return nil
	}
	if len(cfg.weights) != n {
		return fmt.Errorf("weights: got %d for %d points: %w", len(cfg.weights), n, ErrInvalidInput)
	}
	for i, w := range cfg.weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("weights[%d]=%g: %w", i, w, ErrInvalidInput)
		}
	}

	return nil
}

// enumerator holds the read-only state shared by all roots.
type enumerator struct {
	dist    matrix.Matrix
	weights []float64
	scale   float64
	maxLen  int          // maxDim + 1 vertices
	limit   int64        // 0 = unlimited
	count   atomic.Int64 // simplices emitted so far, across workers
}

func (e *enumerator) weight(v int) float64 {
	if e.weights == nil {
		return 0
	}

	return e.weights[v]
}

// adjacent reports whether the edge {u,v} exists at the configured scale.
func (e *enumerator) adjacent(u, v int) bool {
	d := matrix.Distance(e.dist, u, v)

	return !math.IsInf(d, 1) && d <= e.scale
}

// take reserves one simplex against the ceiling.
func (e *enumerator) take() bool {
	n := e.count.Add(1)

	return e.limit == 0 || n <= e.limit
}

func build(ctx context.Context, dist matrix.Matrix, n int, cfg config) (*filtration.Complex, error) {
	if err := validate(cfg, n); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	e := &enumerator{
		dist:    dist,
		weights: cfg.weights,
		scale:   cfg.maxScale,
		maxLen:  cfg.maxDim + 1,
		limit:   int64(cfg.maxSimplices),
	}

	// Neighbourhood lists: higher-indexed present neighbours, ascending.
	present := make([]bool, n)
	for v := 0; v < n; v++ {
		present[v] = e.weight(v) <= e.scale
	}
	nbrs := make([][]int, n)
	if e.maxLen > 1 {
		for v := 0; v < n; v++ {
			if !present[v] {
				continue
			}
			for u := v + 1; u < n; u++ {
				if present[u] && e.adjacent(v, u) {
					nbrs[v] = append(nbrs[v], u)
				}
			}
		}
	}

	results := make([][]simplex.Simplex, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for v := 0; v < n; v++ {
		if !present[v] {
			continue
		}
		v := v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := e.root(v, nbrs[v])
			results[v] = out

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	c := filtration.NewComplex()
	for _, group := range results {
		for _, s := range group {
			if err := c.Add(s); err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}
	log.Debugf("rips: %d points, scale %g, max dim %d: %d simplices (top dim %d)",
		n, cfg.maxScale, cfg.maxDim, c.Len(), c.MaxDim())

	return c, nil
}

// root emits every simplex whose lowest vertex is v.
func (e *enumerator) root(v int, cands []int) ([]simplex.Simplex, error) {
	if !e.take() {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrResourceExceeded)
	}
	s, err := simplex.New(e.weight(v), v)
	if err != nil {
		return nil, err
	}
	out := []simplex.Simplex{s}
	if err := e.extend(&out, []int{v}, s.Value(), cands); err != nil {
		return nil, err
	}

	return out, nil
}

// extend grows the clique vs (value val) by each candidate in turn. cands
// are the common neighbours of vs that are larger than its last vertex.
func (e *enumerator) extend(out *[]simplex.Simplex, vs []int, val float64, cands []int) error {
	for idx, u := range cands {
		nv := max(val, e.weight(u))
		for _, x := range vs {
			nv = max(nv, matrix.Distance(e.dist, x, u))
		}
		if !e.take() {
			return fmt.Errorf("at %d simplices: %w", e.limit, ErrResourceExceeded)
		}
		next := append(slices.Clip(vs), u) // fresh backing array per branch
		s, err := simplex.New(nv, next...)
		if err != nil {
			return err
		}
		*out = append(*out, s)

		if len(next) >= e.maxLen {
			continue
		}
		var nc []int
		for _, c := range cands[idx+1:] {
			if e.adjacent(u, c) {
				nc = append(nc, c)
			}
		}
		if len(nc) > 0 {
			if err := e.extend(out, next, nv, nc); err != nil {
				return err
			}
		}
	}

	return nil
}
