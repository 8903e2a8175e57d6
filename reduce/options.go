// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"runtime"
)

// Strategy selects the reduction schedule.
type Strategy int

const (
	// Standard processes every column left to right.
	Standard Strategy = iota
	// Twist processes dimensions top-down with clearing.
	Twist
	// Parallel reduces dimension blocks concurrently.
	Parallel
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Standard:
		return "standard"
	case Twist:
		return "twist"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

const (
	// DefaultStrategy is Twist; clearing never hurts correctness.
	DefaultStrategy = Twist
	// DefaultMaxColumnAdditions of 0 disables the budget.
	DefaultMaxColumnAdditions = 0
	// ctxCheckEvery is how many columns are processed between ctx polls.
	ctxCheckEvery = 256
)

// Option customises Reduce.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	Strategy        Strategy
	MaxAdditions    int64 // 0 = unlimited
	Representatives bool
	Workers         int // Parallel only
}

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{
		Strategy:     DefaultStrategy,
		MaxAdditions: DefaultMaxColumnAdditions,
		Workers:      runtime.GOMAXPROCS(0),
	}
}

// WithStrategy selects the schedule. Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if s < Standard || s > Parallel {
		panic("reduce: WithStrategy(unknown)")
	}
	return func(o *Options) { o.Strategy = s }
}

// WithMaxColumnAdditions bounds the total number of column additions;
// 0 disables the bound. Panics on n < 0.
func WithMaxColumnAdditions(n int64) Option {
	if n < 0 {
		panic("reduce: WithMaxColumnAdditions(n<0)")
	}
	return func(o *Options) { o.MaxAdditions = n }
}

// WithRepresentatives keeps the V matrix.
func WithRepresentatives() Option {
	return func(o *Options) { o.Representatives = true }
}

// WithWorkers bounds Parallel concurrency. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("reduce: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}
