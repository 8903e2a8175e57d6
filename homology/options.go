// SPDX-License-Identifier: MIT
//
// options.go - pipeline configuration.
//
// Defaults:
//   - max simplex dimension 2 (H0 and H1 are exact, H2 is truncated),
//   - unbounded scale, GF(2) coefficients, Twist reduction,
//   - Euclidean metric for point clouds,
//   - no ceilings, zero-persistence bars kept.

package homology

import (
	"math"
	"runtime"

	"github.com/katalvlaran/lvtda/field"
	"github.com/katalvlaran/lvtda/reduce"
)

// DefaultMaxDim is the default largest simplex dimension.
const DefaultMaxDim = 2

// DefaultMetric is the Minkowski exponent used for point clouds.
const DefaultMetric = 2.0

// Option customises Compute.
type Option func(*Options)

// Options is the resolved pipeline configuration.
type Options struct {
	MaxDim          int
	MaxScale        float64
	Metric          float64
	Field           field.Field
	Strategy        reduce.Strategy
	MaxSimplices    int
	MaxAdditions    int64
	DropZero        bool
	MinPersistence  float64 // < 0 disables
	Representatives bool
	Workers         int
	KeepComplex     bool
	CrossCheck      bool
	GraphFastPath   bool
}

// DefaultOptions returns the defaults listed above.
func DefaultOptions() Options {
	return Options{
		MaxDim:         DefaultMaxDim,
		MaxScale:       math.Inf(1),
		Metric:         DefaultMetric,
		Field:          field.GF2,
		Strategy:       reduce.DefaultStrategy,
		MinPersistence: -1,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// WithMaxDim sets the largest simplex dimension; negative values are
// reported by Compute as ErrInvalidInput.
func WithMaxDim(d int) Option { return func(o *Options) { o.MaxDim = d } }

// WithHomologyDim builds simplices up to k+1 so that H0..Hk are exact.
func WithHomologyDim(k int) Option { return func(o *Options) { o.MaxDim = k + 1 } }

// WithMaxScale bounds the Rips scale; NaN or negative values are reported
// by Compute as ErrInvalidInput.
func WithMaxScale(s float64) Option { return func(o *Options) { o.MaxScale = s } }

// WithMetric sets the Minkowski exponent for point clouds (2 Euclidean, 1
// Manhattan, +Inf Chebyshev). Panics on p ≤ 0 or NaN.
func WithMetric(p float64) Option {
	if !(p > 0) {
		panic("homology: WithMetric(p<=0)")
	}
	return func(o *Options) { o.Metric = p }
}

// WithField selects the coefficient field. Panics on nil or on a field
// without a prime characteristic, e.g. the zero field.Prime.
func WithField(f field.Field) Option {
	if f == nil {
		panic("homology: WithField(nil)")
	}
	if err := field.Validate(f); err != nil {
		panic("homology: WithField: " + err.Error())
	}
	return func(o *Options) { o.Field = f }
}

// WithSigned selects signed coefficients over Z/DefaultPrime.
func WithSigned() Option { return WithField(field.Signed()) }

// WithStrategy selects the reduction schedule.
func WithStrategy(s reduce.Strategy) Option {
	reduce.WithStrategy(s) // panics on unknown values
	return func(o *Options) { o.Strategy = s }
}

// WithMaxSimplices caps the complex size; 0 disables. Panics on n < 0.
func WithMaxSimplices(n int) Option {
	if n < 0 {
		panic("homology: WithMaxSimplices(n<0)")
	}
	return func(o *Options) { o.MaxSimplices = n }
}

// WithMaxColumnAdditions bounds the reduction work; 0 disables. Panics on n < 0.
func WithMaxColumnAdditions(n int64) Option {
	if n < 0 {
		panic("homology: WithMaxColumnAdditions(n<0)")
	}
	return func(o *Options) { o.MaxAdditions = n }
}

// WithDropZeroPersistence removes zero-length bars from the intervals.
func WithDropZeroPersistence() Option { return func(o *Options) { o.DropZero = true } }

// WithMinPersistence removes finite bars with persistence ≤ eps.
// Panics on negative or NaN eps.
func WithMinPersistence(eps float64) Option {
	if !(eps >= 0) {
		panic("homology: WithMinPersistence(eps<0)")
	}
	return func(o *Options) { o.MinPersistence = eps }
}

// WithRepresentatives attaches representative cycles and chains to bars.
func WithRepresentatives() Option { return func(o *Options) { o.Representatives = true } }

// WithWorkers bounds the concurrency of enumeration and Parallel reduction.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("homology: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithKeepComplex returns the ordered filtration in Result.
func WithKeepComplex() Option { return func(o *Options) { o.KeepComplex = true } }

// WithCrossCheck verifies pivot uniqueness and recomputes H0 with
// union-find, failing with ErrInternal on any disagreement.
func WithCrossCheck() Option { return func(o *Options) { o.CrossCheck = true } }

// WithGraphFastPath skips matrix reduction when the filtration has no
// simplex above dimension 1, pairing it with union-find instead.
// Representatives are not available on that path.
func WithGraphFastPath() Option { return func(o *Options) { o.GraphFastPath = true } }
