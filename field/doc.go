// Package field provides the coefficient fields used by boundary assembly
// and column reduction.
//
// Two implementations satisfy Field:
//
//   - GF2: arithmetic mod 2. Every nonzero coefficient is 1, so column
//     addition degenerates to symmetric difference; callers may detect it
//     with IsBinary and take a fast path.
//   - Prime: arithmetic mod an odd prime p (signed boundary convention:
//     -1 is represented as p-1).
//
// Coefficients are canonical residues in [0, p). Fields are immutable
// values and safe for concurrent use.
package field
