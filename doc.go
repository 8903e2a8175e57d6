// Package lvtda computes persistent homology of finite metric data, from a
// distance matrix or a point cloud all the way to a persistence diagram.
//
// 🚀 What is lvtda?
//
//	A deterministic, context-aware pipeline that brings together:
//		• Simplices: canonical vertex tuples with a filtration value
//		• Vietoris–Rips construction: clique expansion with scale and size limits
//		• Filtration ordering: (value, dim, vertices) total order + face tables
//		• Boundary matrices: sparse columns over GF(2) or Z/p
//		• Reduction: standard, twist (clearing) and per-dimension parallel
//		• Diagrams: birth/death pairs, Betti numbers, summaries, cycles
//
// ✨ Why choose lvtda?
//
//   - Reproducible – identical input gives identical pairs for every strategy
//   - Safe surface – sentinel errors via errors.Is, no panics on user input
//   - Bounded – simplex ceilings, column-addition budgets and ctx cancellation
//
// Packages, in pipeline order:
//
//	simplex/    — Simplex value type, faces, canonical keys
//	matrix/     — Dense distance matrices, Euclidean/Pairwise, validators
//	field/      — coefficient fields: GF(2) and prime Z/p
//	filtration/ — Complex container, Order, Filtration face tables, Skeleton
//	rips/       — Vietoris–Rips builder (Build, BuildFunc)
//	boundary/   — sparse Column arithmetic and the boundary Matrix
//	reduce/     — Reduce with Standard/Twist/Parallel strategies, Result
//	diagram/    — Extract/FromPairs, Diagram, Interval, Summary
//	components/ — union-find H0 sweep and the graph fast path
//	homology/   — Compute and FromSimplices, the one-call entry points
//
// Quick start:
//
//	res, err := homology.Compute(ctx, homology.Input{Points: pts},
//		homology.WithHomologyDim(1), homology.WithMaxScale(2))
//	if err != nil { /* errors.Is(err, homology.ErrInvalidInput) … */ }
//	for _, iv := range res.Diagram.Intervals(1) {
//		fmt.Println(iv) // H1 [birth, death)
//	}
package lvtda
