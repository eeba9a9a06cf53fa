// Package matrix: central validation checks.
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors and kernels minimal by delegating shape/index/layout
//     checks here.
//   - Return plain sentinel errors (tagged, not re-wrapped) so call sites can
//     wrap uniformly with an operation tag.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - ValidateTriple runs one O(primaryDim + nnz) forward pass; everything
//     else is O(1) or O(nnz).
package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures both dimensions are strictly positive.
//
// Errors: ErrBadShape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ row < rows and 0 ≤ col < cols.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(rows, cols, row, col int) error {
	if row < 0 || row >= rows {
		return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
	}
	if col < 0 || col >= cols {
		return validatorErrorf("ValidateIndex: Col", ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures the operand vector is non-nil and has exactly n
// elements. Used by MulVec ahead of any allocation.
//
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen[T Scalar](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateEntries ensures every coordinate of a caller-supplied mapping lies
// inside the declared shape and, when the numeric policy demands it, that
// every value is finite.
//
// Errors: ErrOutOfRange (coordinate outside rows×cols), ErrNaNInf (non-finite
// value under validateNaNInf).
// Complexity: O(nnz). Space O(1).
func ValidateEntries[T Scalar](rows, cols int, entries Entries[T], validateNaNInf bool) error {
	for c, v := range entries {
		if err := ValidateIndex(rows, cols, c.Row, c.Col); err != nil {
			return validatorErrorf("ValidateEntries", err)
		}
		if validateNaNInf && isNonFinite(v) {
			return validatorErrorf("ValidateEntries", ErrNaNInf)
		}
	}

	return nil
}

// ValidateTriple checks the CSR/CSC layout invariants of a caller-supplied
// compressed triple before a matrix adopts it.
// Implementation:
//   - Stage 1: structural lengths: len(offsets) == primaryDim+1,
//     offsets[0] == 0, len(indices) == len(values) == offsets[last].
//   - Stage 2: one forward pass: offsets monotonically non-decreasing,
//     every secondary index within [0, secondaryDim), finite values under
//     the numeric policy.
//
// Inputs:
//   - primaryDim: rows for CSR, cols for CSC.
//   - secondaryDim: cols for CSR, rows for CSC.
//
// Errors:
//   - ErrCorruptLayout (lengths, offsets[0], monotonicity, tail mismatch).
//   - ErrOutOfRange    (secondary index outside its dimension).
//   - ErrNaNInf        (non-finite value under validateNaNInf).
//
// Complexity:
//   - Time O(primaryDim + nnz), Space O(1).
func ValidateTriple[T Scalar](primaryDim, secondaryDim int, offsets, indices []int, values []T, validateNaNInf bool) error {
	// Structural lengths first; nothing else is safe to inspect before.
	if len(offsets) != primaryDim+1 || offsets[0] != 0 {
		return validatorErrorf("ValidateTriple: Offsets", ErrCorruptLayout)
	}
	if len(indices) != len(values) || offsets[primaryDim] != len(values) {
		return validatorErrorf("ValidateTriple: Parallel", ErrCorruptLayout)
	}

	// Offsets must never decrease; each slot's width is offsets[s+1]-offsets[s].
	var s int
	for s = 0; s < primaryDim; s++ {
		if offsets[s+1] < offsets[s] {
			return validatorErrorf("ValidateTriple: Monotone", ErrCorruptLayout)
		}
	}

	// Secondary indices and value finiteness in one parallel pass.
	var k int
	for k = 0; k < len(indices); k++ {
		if indices[k] < 0 || indices[k] >= secondaryDim {
			return validatorErrorf("ValidateTriple: Index", ErrOutOfRange)
		}
		if validateNaNInf && isNonFinite(values[k]) {
			return validatorErrorf("ValidateTriple: Value", ErrNaNInf)
		}
	}

	return nil
}
