// Package reduce implements the persistence column reduction.
//
// Columns are processed in increasing index order. While column j is
// nonzero, its low row i is looked up in the pivot table; if no earlier
// column owns i, j becomes the pivot column for i, otherwise the owner k is
// added into j with the scale that cancels row i. Each step strictly lowers
// Low(j) or zeroes the column, so column j needs at most j steps. The
// result satisfies pivot uniqueness: distinct nonzero columns have distinct
// lows.
//
// Strategies (all yield the same pivot table and reduced matrix):
//
//   - Standard: the plain left-to-right loop.
//   - Twist: dimensions from highest to lowest; once column j gets pivot
//     row i, column i is known to reduce to zero and is cleared without
//     work.
//   - Parallel: each dimension's column block is reduced on its own
//     goroutine. Blocks never touch each other's columns or pivot rows, so
//     they share one pivot array without synchronisation. Clearing is not
//     applied in this mode.
//
// The pivot table is local to one Reduce call. Reduce takes ownership of
// the boundary matrix and reduces it in place; the Result exposes it as a
// read-only view.
//
// WithRepresentatives additionally tracks V with R = ∂·V. Column j of V is
// the chain whose boundary is R_j, giving death chains for finite pairs and
// birth cycles for essential classes.
package reduce
