// SPDX-License-Identifier: MIT

package homology

import (
	"context"
	"errors"
	"fmt"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/lvtda/boundary"
	"github.com/katalvlaran/lvtda/components"
	"github.com/katalvlaran/lvtda/diagram"
	"github.com/katalvlaran/lvtda/filtration"
	"github.com/katalvlaran/lvtda/matrix"
	"github.com/katalvlaran/lvtda/reduce"
	"github.com/katalvlaran/lvtda/rips"
	"github.com/katalvlaran/lvtda/simplex"
	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var log = logging.Logger("homology")

// Input describes the point set. Exactly one of Distances, Points or
// Distance must be set. N is required with Distance; with the other
// sources it is optional and, when non-zero, must match their row count.
type Input struct {
	Distances matrix.Matrix       // precomputed symmetric n×n distances
	Points    mat.Matrix          // n×d coordinates, one point per row
	N         int                 // point count; required for Distance
	Distance  matrix.DistanceFunc // called once per pair i<j
	Weights   []float64           // optional per-point filtration offsets
}

// Stats reports sizes and stage timings of one run.
type Stats struct {
	Points         int
	Simplices      int
	SimplicesByDim []int
	Nonzeros       int
	Additions      int64
	Cleared        int
	Field          string
	Strategy       reduce.Strategy
	FastPath       bool

	Build    time.Duration
	Order    time.Duration
	Assemble time.Duration
	Reduce   time.Duration
	Extract  time.Duration
}

// Result is the output of Compute.
type Result struct {
	Diagram    *diagram.Diagram
	Filtration *filtration.Filtration // nil unless WithKeepComplex
	Stats      Stats
}

// Compute runs the full pipeline on in.
func Compute(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	o := resolve(opts)
	var st Stats

	t0 := time.Now()
	c, n, err := buildComplex(ctx, in, o)
	if err != nil {
		return nil, err
	}
	st.Points, st.Build = n, time.Since(t0)
	log.Debugf("homology: built %d simplices on %d points in %s", c.Len(), n, st.Build)

	return run(ctx, c, o, st)
}

// FromSimplices runs ordering, reduction and extraction on an explicit
// filtration. WithMaxSimplices is enforced before ordering; scale,
// dimension and metric options do not apply.
func FromSimplices(ctx context.Context, simplices []simplex.Simplex, opts ...Option) (*Result, error) {
	o := resolve(opts)
	c, err := filtration.FromSimplices(simplices)
	if err != nil {
		return nil, classify("FromSimplices", err)
	}
	if o.MaxSimplices > 0 && c.Len() > o.MaxSimplices {
		return nil, fmt.Errorf("FromSimplices: %d simplices, ceiling %d: %w", c.Len(), o.MaxSimplices, ErrResourceExceeded)
	}

	return run(ctx, c, o, Stats{Points: c.Count(0)})
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// buildComplex turns the input into a Rips complex and reports the point count.
func buildComplex(ctx context.Context, in Input, o Options) (*filtration.Complex, int, error) {
	sources := 0
	for _, set := range []bool{in.Distances != nil, in.Points != nil, in.Distance != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, 0, fmt.Errorf("Compute: %d distance sources, need exactly one: %w", sources, ErrInvalidInput)
	}

	ropts := []rips.Option{
		rips.WithMaxDim(o.MaxDim),
		rips.WithMaxScale(o.MaxScale),
		rips.WithMaxSimplices(o.MaxSimplices),
		rips.WithWorkers(o.Workers),
	}
	if in.Weights != nil {
		ropts = append(ropts, rips.WithWeights(in.Weights))
	}

	switch {
	case in.Distance != nil:
		c, err := rips.BuildFunc(ctx, in.N, in.Distance, ropts...)
		if err != nil {
			return nil, 0, classify("Compute", err)
		}
		return c, in.N, nil
	case in.Points != nil:
		dist, err := matrix.Pairwise(in.Points, o.Metric)
		if err != nil {
			return nil, 0, fmt.Errorf("Compute: points: %w: %w", ErrInvalidInput, err)
		}
		if err := checkCount(in.N, dist.Rows()); err != nil {
			return nil, 0, err
		}
		c, err := rips.Build(ctx, dist, ropts...)
		if err != nil {
			return nil, 0, classify("Compute", err)
		}
		return c, dist.Rows(), nil
	default:
		if matrix.ValidateNotNil(in.Distances) == nil {
			if err := checkCount(in.N, in.Distances.Rows()); err != nil {
				return nil, 0, err
			}
		}
		c, err := rips.Build(ctx, in.Distances, ropts...)
		if err != nil {
			return nil, 0, classify("Compute", err)
		}
		return c, in.Distances.Rows(), nil
	}
}

// checkCount rejects a caller point count that disagrees with the data.
func checkCount(n, rows int) error {
	if n != 0 && n != rows {
		return fmt.Errorf("Compute: N=%d but input has %d points: %w", n, rows, ErrInvalidInput)
	}

	return nil
}

// run orders c and computes its diagram.
func run(ctx context.Context, c *filtration.Complex, o Options, st Stats) (*Result, error) {
	t := time.Now()
	f, err := filtration.Order(c)
	if err != nil {
		return nil, classify("Order", err)
	}
	st.Order = time.Since(t)
	st.Simplices = f.Len()
	st.SimplicesByDim = make([]int, f.MaxDim()+1)
	for d := range st.SimplicesByDim {
		st.SimplicesByDim[d] = f.Count(d)
	}
	st.Field, st.Strategy = o.Field.Name(), o.Strategy

	var dopts []diagram.Option
	if o.DropZero {
		dopts = append(dopts, diagram.WithDropZeroPersistence())
	}
	if o.MinPersistence >= 0 {
		dopts = append(dopts, diagram.WithMinPersistence(o.MinPersistence))
	}

	var d *diagram.Diagram
	if o.GraphFastPath && !o.Representatives && f.MaxDim() <= 1 {
		t = time.Now()
		pairs, err := components.GraphPairs(f)
		if err != nil {
			return nil, classify("GraphPairs", err)
		}
		if d, err = diagram.FromPairs(f, pairs, dopts...); err != nil {
			return nil, internal("FromPairs", err)
		}
		st.FastPath, st.Extract = true, time.Since(t)
	} else {
		if d, err = reduceAndExtract(ctx, f, o, dopts, &st); err != nil {
			return nil, err
		}
	}

	log.Infof("homology: %d simplices, %d pairs, %d additions (%s, %s) order %s reduce %s",
		st.Simplices, d.Len(), st.Additions, st.Field, st.Strategy, st.Order, st.Reduce)

	res := &Result{Diagram: d, Stats: st}
	if o.KeepComplex {
		res.Filtration = f
	}

	return res, nil
}

func reduceAndExtract(ctx context.Context, f *filtration.Filtration, o Options, dopts []diagram.Option, st *Stats) (*diagram.Diagram, error) {
	t := time.Now()
	m, err := boundary.Build(f, o.Field)
	if err != nil {
		return nil, classify("Assemble", err)
	}
	st.Assemble, st.Nonzeros = time.Since(t), m.Nnz()
	log.Debugf("homology: boundary %d columns, %d nonzeros over %s", m.Len(), st.Nonzeros, st.Field)

	ropts := []reduce.Option{
		reduce.WithStrategy(o.Strategy),
		reduce.WithMaxColumnAdditions(o.MaxAdditions),
		reduce.WithWorkers(o.Workers),
	}
	if o.Representatives {
		ropts = append(ropts, reduce.WithRepresentatives())
	}
	t = time.Now()
	r, err := reduce.Reduce(ctx, m, ropts...)
	if err != nil {
		return nil, classify("Reduce", err)
	}
	st.Reduce, st.Additions, st.Cleared = time.Since(t), r.Additions(), r.Cleared()
	if o.CrossCheck {
		if err := r.Verify(); err != nil {
			return nil, internal("Verify", err)
		}
	}

	t = time.Now()
	d, err := diagram.Extract(f, r, dopts...)
	if err != nil {
		return nil, internal("Extract", err)
	}
	st.Extract = time.Since(t)
	if o.CrossCheck {
		if err := components.Check(f, d); err != nil {
			return nil, internal("CrossCheck", err)
		}
	}

	return d, nil
}

// classify wraps err so that input rejections also match ErrInvalidInput.
func classify(stage string, err error) error {
	switch {
	case errors.Is(err, rips.ErrInvalidInput),
		errors.Is(err, filtration.ErrInvalidInput),
		errors.Is(err, filtration.ErrDuplicateSimplex):
		return fmt.Errorf("%s: %w: %w", stage, ErrInvalidInput, err)
	default:
		return fmt.Errorf("%s: %w", stage, err)
	}
}

// internal marks a failed self-check and records the stack.
func internal(stage string, err error) error {
	return pkgerrors.WithStack(fmt.Errorf("%s: %w: %w", stage, ErrInternal, err))
}
