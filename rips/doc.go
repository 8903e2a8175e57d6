// Package rips builds Vietoris–Rips complexes from distance structures.
//
// A simplex σ is included iff every pairwise distance among its vertices is
// ≤ the maximum scale and dim(σ) ≤ the maximum dimension. Its filtration
// value is its diameter; with per-point weights (WithWeights) the value is
// max(diameter, max vertex weight), and a vertex is present only when its
// weight is ≤ the scale. Both rules keep face values ≤ coface values, so
// the result is closed and monotone by construction.
//
// Enumeration is clique expansion over the neighbourhood graph, rooted at
// the lowest vertex of each simplex. Roots are independent and are expanded
// concurrently on an errgroup (WithWorkers); their output is merged in root
// order, so the complex is identical for any worker count.
//
// Distances of +Inf mean "never connected". NaN or negative distances,
// asymmetric matrices, weight/point-count mismatches and negative bounds are
// rejected with ErrInvalidInput before enumeration starts. WithMaxSimplices
// bounds the output size; exceeding it returns ErrResourceExceeded, which
// callers may recover from by retrying with a smaller scale or dimension.
//
// Complexity: output-sensitive, O(Σ_σ dim(σ)·deg) over the produced simplices
// plus O(n²) for the neighbourhood lists.
package rips
