// Package matrix: helpers for the uncompressed coordinate store.
// The live store is a plain Entries map (O(1) access, pattern-flexible); the
// total order the compression algorithm relies on is re-established here by
// one explicit sort per scan, because Go maps carry no ordering of their own.
package matrix

import "sort"

// orderedCoords extracts the store's keys sorted by the matrix's storage
// order: primary axis first, secondary axis as tie-break. The returned slice
// is freshly allocated; the map is not mutated.
//
// Determinism:
//   - The order is total (keys are unique), so the result is stable across
//     runs regardless of map iteration randomization.
//
// Complexity:
//   - Time O(nnz log nnz) for the sort, Space O(nnz) for the key slice.
//     A single sort per conversion replaces the per-slot range lookups the
//     naive scheme would need, keeping the subsequent scan O(nnz).
func orderedCoords[T Scalar](entries Entries[T], order StorageOrder) []Coord {
	coords := make([]Coord, 0, len(entries))
	for c := range entries {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return order.less(coords[i], coords[j]) })

	return coords
}

// cloneEntries returns an independent copy of a coordinate mapping.
// Used by New under the default copy-ownership policy.
// Complexity: O(nnz) time and space.
func cloneEntries[T Scalar](entries Entries[T]) Entries[T] {
	out := make(Entries[T], len(entries))
	for c, v := range entries {
		out[c] = v
	}

	return out
}
