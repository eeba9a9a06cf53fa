// Package matrix: conversion kernels between the two representations.
// Compress turns the ordered coordinate store into the CSR/CSC triple;
// Uncompress is the exact inverse. Both are destructive of the source
// representation so only one layout is resident at any time, and both are
// idempotent no-ops when the matrix is already in the requested mode.
package matrix

// Compress converts the coordinate store into the compressed triple and
// flips the mode flag.
// Implementation:
//   - Stage 1: fast no-op when already compressed; extract the coordinate
//     keys sorted in storage order (one O(nnz log nnz) sort, the Go-native
//     stand-in for the ordered map the scan exploits).
//   - Stage 2: single forward scan over the ordered entries. A two-pointer
//     walk advances through all entries of each primary slot s, appending
//     their secondary index and value, then records offsets[s+1] = nnz seen
//     so far. Empty slots cost O(1): the inner walk does not advance and the
//     offset simply carries the previous count forward.
//   - Stage 3: release the coordinate store and set the mode flag.
//
// Behavior highlights:
//   - Within each slot, entries appear in ascending secondary order, the
//     same order the coordinate store's comparator defines.
//   - The source map is cleared to reclaim memory (destructive conversion);
//     under WithAdoptEntries that is the very map the caller passed to New.
//
// Returns:
//   - nil on success; the operation cannot fail on a valid receiver.
//
// Determinism:
//   - Fully deterministic: sorted scan order, fixed slot loop s=0..dim-1.
//
// Complexity:
//   - Time O(nnz log nnz + primaryDim), Space O(nnz) for the new triple.
//     The scan itself is O(nnz + primaryDim) with no per-slot lookups.
func (m *Matrix[T]) Compress() error {
	if m.compressed {
		return nil // idempotent: already in the target mode
	}

	pd := m.primaryDim()
	nnz := len(m.entries)
	coords := orderedCoords(m.entries, m.order)

	offsets := make([]int, pd+1)
	indices := make([]int, nnz)
	values := make([]T, nnz)

	// Two-pointer scan: k walks the ordered entries exactly once while s
	// walks the primary slots; entries are already grouped by slot.
	var s, k int
	for s = 0; s < pd; s++ {
		for k < nnz && m.order.primary(coords[k]) == s {
			indices[k] = m.order.secondary(coords[k])
			values[k] = m.entries[coords[k]]
			k++
		}
		offsets[s+1] = k // carries the running count forward over empty slots
	}

	// Destructive flip: drop the map, install the triple.
	m.entries = nil
	m.offsets, m.indices, m.values = offsets, indices, values
	m.compressed = true

	return nil
}

// Uncompress converts the compressed triple back into a coordinate store and
// flips the mode flag.
// Implementation:
//   - Stage 1: fast no-op when already uncompressed.
//   - Stage 2: double loop (primary slot s, then that slot's offset range)
//     re-inserting each (primary, secondary, value) triple into a fresh map
//     keyed in the matrix's storage order.
//   - Stage 3: release the three arrays and clear the mode flag.
//
// Behavior highlights:
//   - Round-trip exact: Compress followed by Uncompress reproduces the
//     original mapping (same keys, same values) for both storage orders.
//
// Returns:
//   - nil on success; the operation cannot fail on a valid receiver.
//
// Complexity:
//   - Time O(primaryDim + nnz), Space O(nnz) for the new map.
func (m *Matrix[T]) Uncompress() error {
	if !m.compressed {
		return nil // idempotent: already in the target mode
	}

	pd := m.primaryDim()
	entries := make(Entries[T], len(m.values))
	var s, k int
	for s = 0; s < pd; s++ {
		for k = m.offsets[s]; k < m.offsets[s+1]; k++ {
			entries[m.order.coordAt(s, m.indices[k])] = m.values[k]
		}
	}

	// Destructive flip: drop the triple, install the map.
	m.offsets, m.indices, m.values = nil, nil, nil
	m.entries = entries
	m.compressed = false

	return nil
}
