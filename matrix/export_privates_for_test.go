// Package matrix: test-only bridges into unexported state.
// Kept in a dedicated file so the surface exposed to the _test package is
// explicit and easy to audit; nothing here is part of the public API.
package matrix

// RawTriple exposes the live compressed arrays for white-box assertions.
// Returns nils when the matrix is uncompressed.
func RawTriple[T Scalar](m *Matrix[T]) (offsets, indices []int, values []T) {
	return m.offsets, m.indices, m.values
}

// RawEntries exposes the live coordinate store for white-box assertions.
// Returns nil when the matrix is compressed.
func RawEntries[T Scalar](m *Matrix[T]) Entries[T] {
	return m.entries
}

// OrderedCoords exposes the storage-order key extraction for tests that pin
// the ordering invariant directly.
func OrderedCoords[T Scalar](entries Entries[T], order StorageOrder) []Coord {
	return orderedCoords(entries, order)
}
