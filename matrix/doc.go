// Package matrix offers the dense distance structures consumed by the
// complex builders.
//
// The matrix package provides:
//
//   - Matrix, a minimal two-dimensional float64 interface (Rows/Cols/At/Set/Clone).
//   - Dense, a row-major implementation with safe accessors (errors, not panics).
//   - Distance constructors: Pairwise/Euclidean from a gonum point cloud
//     (rows are points), FromFunc from a caller distance callback, FromRows
//     from literal data.
//   - Validators: ValidateSquare, ValidateSymmetric and ValidateDistances,
//     the latter reporting the first offending (row, col) entry.
//
// Distances must be non-negative and not NaN; +Inf is accepted and means
// "never connected". The diagonal is ignored by ValidateDistances.
//
// Complexity:
//
//   - Pairwise: O(n²·d) for n points in d dimensions, O(n²) memory.
//   - ValidateDistances: O(n²), no allocation.
package matrix
