// Package filtration holds simplicial complexes and their filtration order.
//
// A Complex is a mutable bag of simplices grouped by dimension. It is filled
// by a single owner (a builder such as rips, or FromSimplices for explicit
// filtrations) and then handed to Order, which produces an immutable
// Filtration: a bijection between the simplices and the index range [0, N).
//
// Order key, ascending:
//
//  1. filtration value,
//  2. dimension,
//  3. vertex tuple, lexicographically.
//
// The key is total on distinct simplices, so the order is deterministic for
// identical input regardless of insertion order. After sorting, Order checks
// that every codimension-1 face is present with a strictly smaller index. A
// failure there is a builder defect and is reported as ErrOrderingViolation
// with a stack trace attached.
//
// A Filtration is read-only and safe for concurrent use.
//
// Complexity:
//
//   - Order: O(N log N · k) for N simplices of at most k vertices.
//   - IndexOf: O(k) expected (hash lookup).
//   - CountUpTo: O(log N).
package filtration
