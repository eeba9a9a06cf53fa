// Package sparsix is a small sparse linear-algebra toolkit built around one
// idea: a matrix that owns exactly one of two interchangeable layouts at a
// time and converts between them on demand.
//
// 🚀 What is sparsix?
//
//	A focused, dependency-light library that brings together:
//		• matrix/ : the dual-representation container: an ordered coordinate
//		  store (mutable, pattern-flexible) and a CSR/CSC compressed triple
//		  (read-optimized, pattern-fixed), with element access, SpMV and
//		  Frobenius/one/max norms dispatching on the active mode
//		• mmio/   : MatrixMarket coordinate reader/writer, with transparent
//		  gzip support for .mtx.gz files
//		• cmd/spmvbench : a timing harness comparing SpMV across modes
//
// ✨ Why choose sparsix?
//
//   - Explicit over implicit: dimensions are stored, never inferred; every
//     indexer is bounds-checked and returns a sentinel error
//   - Deterministic: fixed iteration orders, no global state
//   - Generic: float64 and complex128 elements through one type parameter
//   - Memory-frugal: mode flips consume the source representation instead
//     of holding both layouts alive
//
// Quick example:
//
//	entries := matrix.Entries[float64]{
//		{Row: 0, Col: 0}: 4,
//		{Row: 2, Col: 2}: -17,
//		{Row: 3, Col: 3}: 4,
//	}
//	m, _ := matrix.New(4, 4, entries)
//	_ = m.Compress()                     // map → CSR
//	y, _ := m.MulVec([]float64{1, 1, 1, 1})
//	nrm, _ := m.Norm(matrix.Frobenius)
//
// See the matrix package documentation for the full contract.
package sparsix
