// SPDX-License-Identifier: MIT

package reduce

import (
	"context"
	"fmt"
	"sync/atomic"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/lvtda/boundary"
	"github.com/katalvlaran/lvtda/field"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var log = logging.Logger("reduce")

// noPivot marks an unowned row in the pivot table.
const noPivot = -1

// reducer is the state of one Reduce call. It is discarded with the call;
// only the Result survives.
type reducer struct {
	m       *boundary.Matrix
	fld     field.Field
	pivot   []int             // row -> owning column, noPivot if free
	v       []boundary.Column // nil unless representatives are kept
	limit   int64             // 0 = unlimited
	adds    atomic.Int64
	cleared int
}

// Reduce runs the persistence reduction on m in place and returns the
// result view. m must not be used by the caller afterwards except through
// the Result.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrMalformed (stack-annotated) when a column has a row ≥ its index,
//     or, for Twist and Parallel, when a column's rows are not all one
//     dimension below it.
//   - ErrBudgetExceeded when WithMaxColumnAdditions is exhausted.
//   - ctx.Err() on cancellation, polled every few hundred columns.
//
// Complexity: O(N³) worst case, typically near-linear in practice with
// Twist on Rips filtrations.
func Reduce(ctx context.Context, m *boundary.Matrix, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.WithStack(fmt.Errorf("Reduce: %w", err))
	}
	if o.Strategy != Standard {
		if err := checkGraded(m); err != nil {
			return nil, errors.WithStack(fmt.Errorf("Reduce(%s): %w", o.Strategy, err))
		}
	}

	n := m.Len()
	r := &reducer{m: m, fld: m.Field(), pivot: make([]int, n), limit: o.MaxAdditions}
	for i := range r.pivot {
		r.pivot[i] = noPivot
	}
	if o.Representatives {
		r.v = make([]boundary.Column, n)
		for j := range r.v {
			r.v[j] = boundary.Column{{Row: j, Coeff: field.One}}
		}
	}

	var err error
	switch o.Strategy {
	case Standard:
		err = r.standard(ctx)
	case Twist:
		err = r.twist(ctx)
	case Parallel:
		err = r.parallel(ctx, o.Workers)
	}
	if err != nil {
		return nil, fmt.Errorf("Reduce(%s): %w", o.Strategy, err)
	}

	res := &Result{
		m:          m,
		v:          r.v,
		pivotOfRow: r.pivot,
		strategy:   o.Strategy,
		additions:  r.adds.Load(),
		cleared:    r.cleared,
	}
	log.Debugf("reduce: %s, %d columns, %d additions, %d cleared", o.Strategy, n, res.additions, res.cleared)

	return res, nil
}

// checkGraded verifies that every row of a d-column is a (d-1)-column, the
// property Twist and Parallel rely on.
func checkGraded(m *boundary.Matrix) error {
	for j := 0; j < m.Len(); j++ {
		d := m.Dim(j)
		for _, e := range m.Column(j) {
			if m.Dim(e.Row) != d-1 {
				return fmt.Errorf("column %d (dim %d) has row %d (dim %d): %w",
					j, d, e.Row, m.Dim(e.Row), ErrMalformed)
			}
		}
	}

	return nil
}

// columnsByDim groups column indices by dimension, each group ascending.
func columnsByDim(m *boundary.Matrix) [][]int {
	groups := make([][]int, m.MaxDim()+1)
	for j := 0; j < m.Len(); j++ {
		d := m.Dim(j)
		groups[d] = append(groups[d], j)
	}

	return groups
}

// reduceColumn eliminates the low of column j against earlier pivots until
// it is zero or owns a free row.
func (r *reducer) reduceColumn(j int, ws, vws *boundary.Workspace) error {
	for {
		i := r.m.Low(j)
		if i < 0 {
			return nil // birth
		}
		k := r.pivot[i]
		if k == noPivot {
			r.pivot[i] = j // death
			return nil
		}
		scale, err := field.EliminationScale(r.fld, r.m.LowCoeff(j), r.m.LowCoeff(k))
		if err != nil {
			return err
		}
		if err := r.m.AddColumn(j, k, scale, ws); err != nil {
			return err
		}
		if r.v != nil {
			vws.Swap(r.fld, &r.v[j], r.v[k], scale)
		}
		if n := r.adds.Add(1); r.limit > 0 && n > r.limit {
			return fmt.Errorf("column %d: more than %d additions: %w", j, r.limit, ErrBudgetExceeded)
		}
	}
}

func (r *reducer) standard(ctx context.Context) error {
	ws, vws := boundary.NewWorkspace(16), boundary.NewWorkspace(16)
	for j := 0; j < r.m.Len(); j++ {
		if j%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := r.reduceColumn(j, ws, vws); err != nil {
			return err
		}
	}

	return nil
}

// twist reduces dimensions top-down. A column that becomes the pivot of
// row i proves column i reduces to zero, so i is cleared and skipped.
func (r *reducer) twist(ctx context.Context) error {
	ws, vws := boundary.NewWorkspace(16), boundary.NewWorkspace(16)
	groups := columnsByDim(r.m)
	cleared := make([]bool, r.m.Len())
	step := 0
	for d := len(groups) - 1; d >= 0; d-- {
		for _, j := range groups[d] {
			if step%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			step++
			if cleared[j] {
				continue
			}
			if err := r.reduceColumn(j, ws, vws); err != nil {
				return err
			}
			i := r.m.Low(j)
			if i < 0 {
				continue
			}
			if r.v != nil {
				// ∂R_j = 0, so R_j is a valid V column for the zeroed i.
				r.v[i] = r.m.Column(j)
			}
			r.m.Clear(i)
			cleared[i] = true
			r.cleared++
		}
	}

	return nil
}

// parallel reduces each dimension block on its own goroutine.
func (r *reducer) parallel(ctx context.Context, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, cols := range columnsByDim(r.m) {
		if len(cols) == 0 {
			continue
		}
		cols := cols
		g.Go(func() error {
			ws, vws := boundary.NewWorkspace(16), boundary.NewWorkspace(16)
			for c, j := range cols {
				if c%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if err := r.reduceColumn(j, ws, vws); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
