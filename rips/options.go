// SPDX-License-Identifier: MIT
//
// options.go - functional options for the Rips builder.
//
// Contract:
//   - Option constructors panic on values that can only be programmer error
//     (non-positive worker count, negative ceiling).
//   - Bounds that come from data (dimension, scale, weights) are validated by
//     Build and reported as ErrInvalidInput, never by panic.

package rips

import (
	"math"
	"runtime"
)

// Deterministic defaults.
const (
	// DefaultMaxDim builds up to edges, enough for H0.
	DefaultMaxDim = 1
	// DefaultMaxSimplices of 0 disables the ceiling.
	DefaultMaxSimplices = 0
)

// Option customises a build.
type Option func(*config)

type config struct {
	maxDim       int       // ≥ 0 after validation
	maxScale     float64   // ≥ 0, +Inf allowed
	weights      []float64 // nil or len == n
	maxSimplices int       // 0 = unlimited
	workers      int       // ≥ 1
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxDim:       DefaultMaxDim,
		maxScale:     math.Inf(1), // every finite distance is admitted
		maxSimplices: DefaultMaxSimplices,
		workers:      runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxDim sets the highest simplex dimension to build. Negative values
// are reported by Build as ErrInvalidInput.
func WithMaxDim(d int) Option {
	return func(c *config) { c.maxDim = d }
}

// WithMaxScale sets the largest admitted diameter; the default is +Inf.
// NaN and negative values are reported by Build as ErrInvalidInput.
func WithMaxScale(s float64) Option {
	return func(c *config) { c.maxScale = s }
}

// WithWeights sets per-point filtration offsets. The slice is copied.
func WithWeights(w []float64) Option {
	cp := append([]float64(nil), w...)
	return func(c *config) { c.weights = cp }
}

// WithMaxSimplices caps the number of simplices; 0 disables the cap.
// Panics on negative n.
func WithMaxSimplices(n int) Option {
	if n < 0 {
		panic("rips: WithMaxSimplices(n<0)")
	}
	return func(c *config) { c.maxSimplices = n }
}

// WithWorkers bounds enumeration concurrency. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("rips: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}
