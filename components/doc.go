// Package components computes 0-dimensional persistence with a disjoint-set
// forest, independently of matrix reduction.
//
// Edges are scanned in filtration order. An edge joining two components
// kills the younger one (elder rule): the component whose oldest vertex has
// the larger filtration index dies, producing the pair (that vertex, edge).
// Edges inside one component create 1-cycles and are skipped. Components
// still alive at the end are essential.
//
// The pairing is the same one matrix reduction yields for dimension 0, so
// Check can assert a reduced diagram against it, and the H0 bars can be
// obtained in near-linear time when only connectivity matters.
//
// Complexity: O(N·α(N)) after ordering.
package components
