// Package diagram turns a reduced boundary matrix into persistence pairs and
// per-dimension diagrams.
//
// Pairing rule: for every pivot (row i owned by column j) emit the finite
// pair (i, j) in the dimension of simplex i. Every index that is neither a
// pivot row nor a pivot column is an essential class with death Infinite.
// Each simplex index therefore appears in exactly one pair.
//
// Diagram.Intervals(d) is sorted by birth value, ties broken by birth index.
// Zero-length bars (birth value == death value) are kept unless the caller
// asks for WithDropZeroPersistence or WithMinPersistence; filtering only
// affects Intervals and Summary. Pairs and Betti always see every pair.
//
// Betti(d, t) stabs the bars of dimension d in index space: with k simplices
// of value ≤ t, a bar [b, e) is alive iff b ≤ k-1 < e (e = N for essential
// classes). Each dimension keeps one interval tree, so a query costs
// O(log n + answer).
package diagram
