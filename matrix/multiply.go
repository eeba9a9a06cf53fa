// Package matrix: matrix-vector multiplication kernel.
// One public entry point dispatching on the active mode and the storage
// order; all three bodies do O(nnz) work into a freshly allocated result.
package matrix

// MulVec computes y = A·x for a column vector x of length Cols(); the result
// has length Rows() and never aliases the input.
// Implementation:
//   - Stage 1: validate x (non-nil, exact length); allocate the zeroed
//     result vector.
//   - Stage 2: dispatch.
//     Uncompressed: one ordered pass over the coordinate store accumulating
//     y[row] += value·x[col] (order-independent mathematically, ordered scan
//     for reproducible rounding).
//     Compressed row-major (CSR): per-row reduction over the row's
//     contiguous indices/values slice; sequential reads, the performance
//     path.
//     Compressed column-major (CSC): per-column scatter-accumulate
//     y[indices[k]] += values[k]·x[col].
//
// Behavior highlights:
//   - Mode-invariant: results agree across modes elementwise within
//     floating-point tolerance.
//   - Fully empty rows yield exact zeros in y.
//
// Inputs:
//   - x: value vector, len(x) == Cols().
//
// Returns:
//   - []T: freshly allocated y, len == Rows().
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (both wrapped with "MulVec").
//
// Determinism:
//   - Fixed scan orders in every mode; identical inputs give bit-identical
//     results.
//
// Complexity:
//   - Time O(nnz) (+ O(nnz log nnz) ordering in the uncompressed mode),
//     Space O(rows) for the accumulator.
func (m *Matrix[T]) MulVec(x []T) ([]T, error) {
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make([]T, m.rows) // fresh, zero-initialized accumulator

	if !m.compressed {
		// Ordered scan keeps float accumulation order reproducible; the
		// map's own iteration order is randomized.
		for _, c := range orderedCoords(m.entries, m.order) {
			y[c.Row] += m.entries[c] * x[c.Col]
		}
		return y, nil
	}

	var s, k int
	if m.order == RowMajor {
		// CSR: dot-product of each row's contiguous slice with x.
		for s = 0; s < m.rows; s++ {
			var acc T
			for k = m.offsets[s]; k < m.offsets[s+1]; k++ {
				acc += m.values[k] * x[m.indices[k]]
			}
			y[s] = acc
		}
		return y, nil
	}

	// CSC: scatter each column's contribution into y.
	for s = 0; s < m.cols; s++ {
		xv := x[s]
		for k = m.offsets[s]; k < m.offsets[s+1]; k++ {
			y[m.indices[k]] += m.values[k] * xv
		}
	}

	return y, nil
}
