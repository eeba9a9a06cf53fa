// Package matrix: helpers for the compressed (CSR/CSC) triple.
// The triple is three parallel flat arrays: offsets (one per primary slot,
// plus one), indices (secondary axis, one per non-zero) and values. Entries
// of slot s occupy positions offsets[s]..offsets[s+1].
package matrix

// findSlot locates the position of (primary, secondary) inside the triple by
// scanning slot `primary`'s contiguous offset range. Returns the flat index
// into indices/values and whether the coordinate is part of the pattern.
//
// The caller must have bounds-checked `primary` already; the scan itself only
// touches that slot's range, matching the original lookup.
//
// Complexity: O(k) where k is the slot's non-zero count.
func findSlot(offsets, indices []int, primary, secondary int) (int, bool) {
	for k := offsets[primary]; k < offsets[primary+1]; k++ {
		if indices[k] == secondary {
			return k, true
		}
	}

	return 0, false
}

// cloneTriple deep-copies a caller-supplied compressed triple.
// Used by NewCSR/NewCSC under the default copy-ownership policy.
// Complexity: O(primaryDim + nnz) time and space.
func cloneTriple[T Scalar](offsets, indices []int, values []T) ([]int, []int, []T) {
	co := make([]int, len(offsets))
	copy(co, offsets)
	ci := make([]int, len(indices))
	copy(ci, indices)
	cv := make([]T, len(values))
	copy(cv, values)

	return co, ci, cv
}
