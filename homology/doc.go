// Package homology is the one-call entry point of the engine:
//
//	input → rips.Build → filtration.Order → boundary.Build → reduce.Reduce → diagram.Extract
//
// Input is one of a precomputed distance matrix, a gonum point cloud (rows
// are points) or a point count with a distance callback, plus optional
// per-point weights. Compute returns the persistence diagram, run
// statistics and, with WithKeepComplex, the ordered filtration for
// consumers that need simplex identities.
//
// FromSimplices runs the same pipeline on an explicit filtration.
//
// Errors are classified by the sentinels re-exported here, so callers can
// branch with errors.Is against a single package:
//
//   - ErrInvalidInput: rejected before construction; retrying is pointless.
//   - ErrResourceExceeded, ErrBudgetExceeded: recoverable; retry with a
//     smaller scale or dimension, or a larger budget.
//   - ErrOrderingViolation, ErrMalformed, ErrInternal: broken invariants.
//     They carry a stack trace and must abort the computation.
//
// Stage timings and sizes are logged through go-log under "homology".
package homology
