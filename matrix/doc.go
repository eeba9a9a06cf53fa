// Package matrix implements a sparse matrix with two interchangeable internal
// representations and a stateful mode switch between them.
//
// The matrix package provides:
//
//   - A coordinate store: an associative (row, col) → value mapping ordered
//     by the matrix's storage order. Mutable and sparsity-pattern-flexible.
//   - A compressed triple: the classic three-array CSR/CSC layout
//     (offsets, indices, values). Read-optimized and pattern-fixed.
//   - Matrix[T]: the entity owning exactly one of the two stores at a time,
//     with element access, Compress/Uncompress, matrix-vector multiplication
//     and Frobenius/one/max norms, each dispatching on the active mode and on
//     the storage-order tag fixed at construction.
//
// Elements are float64 or complex128 through the Scalar type parameter.
// Dimensions are explicit and immutable: New rejects non-positive shapes and
// out-of-range coordinates, so empty trailing rows and columns are fully
// visible to MulVec and Norm sizing.
//
// Mode flips are destructive by design: Compress consumes the coordinate
// store and Uncompress consumes the compressed triple, so only one layout is
// resident at any time. Both calls are idempotent no-ops when the matrix is
// already in the requested mode.
//
// A Matrix is not safe for concurrent mutation. Compress, Uncompress, Set and
// Add mutate the receiver in place; concurrent readers with any concurrent
// mutator on the same instance constitute a data race. Concurrent read-only
// use (At, MulVec, Norm) is safe once no mutator runs.
//
// All user-triggered failures surface as package sentinel errors matched via
// errors.Is; no operation panics on user input.
package matrix
