// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtda/boundary"
)

// Infinite is the death index of an essential class.
const Infinite = -1

// Pair is a persistence pair in index space.
type Pair struct {
	Dim   int
	Birth int // filtration index of the creating simplex
	Death int // filtration index of the destroying simplex, or Infinite
}

// IsInfinite reports whether the class never dies.
func (p Pair) IsInfinite() bool { return p.Death == Infinite }

// Interval is a bar of the barcode in value space.
type Interval struct {
	Dim        int
	Birth      float64
	Death      float64 // +Inf for essential classes
	BirthIndex int
	DeathIndex int // Infinite for essential classes

	// Cycle is a representative cycle of the class, as filtration indices
	// with coefficients; nil unless the reduction kept representatives.
	Cycle boundary.Column
	// Chain is the chain whose boundary kills Cycle; nil for essential
	// classes or without representatives.
	Chain boundary.Column
}

// IsInfinite reports whether the bar never ends.
func (iv Interval) IsInfinite() bool { return iv.DeathIndex == Infinite }

// Persistence returns Death - Birth (+Inf for essential bars).
func (iv Interval) Persistence() float64 {
	if iv.IsInfinite() {
		return math.Inf(1)
	}

	return iv.Death - iv.Birth
}

// String renders the bar as "H1 [0.5, 1.25)".
func (iv Interval) String() string {
	return fmt.Sprintf("H%d [%g, %g)", iv.Dim, iv.Birth, iv.Death)
}
