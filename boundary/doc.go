// Package boundary assembles the sparse boundary matrix of a filtration and
// provides the column primitives the reduction is built on.
//
// Column j lists the filtration indices of the codimension-1 faces of
// simplex j with their coefficients, sorted by row. Over GF(2) every
// coefficient is 1. Over Z/p the face omitting vertex t carries (-1)^t.
// Columns of vertices are empty. A well-formed matrix has every row of
// column j strictly below j; Validate reports anything else as ErrMalformed.
//
// Primitives:
//
//   - Low(j): the largest row of column j in O(1) (last entry).
//   - AddInto(fld, dst, src, scale, buf): dst + scale·src written into buf,
//     O(nnz(dst)+nnz(src)). src and dst are only read, so the two never
//     alias the output.
//   - Matrix.AddColumn(j, k, scale, ws): column j += scale·column k, using
//     a Workspace whose buffer is swapped with column j's old storage.
package boundary
