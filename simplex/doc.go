// Package simplex defines the Simplex value type: an immutable, sorted,
// duplicate-free set of vertex indices carrying a filtration value.
//
// A k-simplex has k+1 vertices. Its codimension-1 faces are obtained by
// omitting one vertex at a time; Faces returns them in omitted-vertex order
// (face i omits Vertex(i)), which is the order the signed boundary operator
// relies on for its alternating signs.
//
// Identity:
//
//	Two simplices are equal iff their vertex sets are equal. The filtration
//	value does not take part in equality, hashing (Key) or ordering (Compare).
//
// Complexity:
//
//   - New: O(k log k) (sort + dedup), Faces: O(k²), Key: O(k).
//   - Equal/Compare: O(k).
package simplex
