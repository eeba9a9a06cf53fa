// Package matrix_test contains unit tests for construction, element access
// and the option surface of the dual-representation Matrix.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algebrago/sparsix/matrix"
)

// smallEntries is the shared 4×4 fixture: the matrix behind the canonical
// CSR triple offsets=[0,1,1,2,3], indices=[0,2,3], values=[4,-17,4].
func smallEntries() matrix.Entries[float64] {
	return matrix.Entries[float64]{
		{Row: 0, Col: 0}: 4,
		{Row: 2, Col: 2}: -17,
		{Row: 3, Col: 3}: 4,
	}
}

// TestNewBadShape ensures New rejects non-positive dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := matrix.New(0, 5, matrix.Entries[float64]{}) // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New(5, -1, matrix.Entries[float64]{}) // negative cols
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewRejectsOutOfRangeEntries ensures ingestion bounds-checks every
// coordinate against the explicit shape.
func TestNewRejectsOutOfRangeEntries(t *testing.T) {
	bad := matrix.Entries[float64]{{Row: 4, Col: 0}: 1} // row == rows
	_, err := matrix.New(4, 4, bad)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	bad = matrix.Entries[float64]{{Row: 0, Col: -1}: 1} // negative col
	_, err = matrix.New(4, 4, bad)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewNaNInfPolicy covers both sides of the numeric validation policy.
func TestNewNaNInfPolicy(t *testing.T) {
	bad := matrix.Entries[float64]{{Row: 0, Col: 0}: math.NaN()}

	_, err := matrix.New(2, 2, bad) // default policy rejects NaN
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.New(2, 2, bad, matrix.WithNoValidateNaNInf()) // relaxed policy lets it through
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestNewEmptyMatrix ensures a nil mapping builds a legal all-zero matrix
// with fully visible dimensions.
func TestNewEmptyMatrix(t *testing.T) {
	m, err := matrix.New[float64](3, 7, nil)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 7, m.Cols())
	require.Equal(t, 0, m.NNZ())
	require.False(t, m.IsCompressed())

	v, err := m.At(2, 6) // in-range absent coordinate reads as zero
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestAtBounds ensures At returns ErrOutOfRange instead of panicking.
func TestAtBounds(t *testing.T) {
	m, err := matrix.New(4, 4, smallEntries())
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Compress()) // same policy in compressed mode
	_, err = m.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetAndAddUncompressed validates insert, overwrite and accumulate
// semantics on the coordinate store.
func TestSetAndAddUncompressed(t *testing.T) {
	m, err := matrix.New(4, 4, smallEntries())
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 3, 2.5)) // insert a fresh coordinate
	v, err := m.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	require.NoError(t, m.Set(1, 3, -1)) // overwrite in place
	v, _ = m.At(1, 3)
	require.Equal(t, -1.0, v)

	require.NoError(t, m.Add(1, 3, 0.5)) // accumulate onto existing entry
	v, _ = m.At(1, 3)
	require.Equal(t, -0.5, v)

	require.NoError(t, m.Add(0, 3, 3)) // accumulate onto implicit zero inserts
	v, _ = m.At(0, 3)
	require.Equal(t, 3.0, v)
	require.Equal(t, 5, m.NNZ())
}

// TestSetCompressedPatternSlot ensures existing non-zero slots remain
// writable after compression.
func TestSetCompressedPatternSlot(t *testing.T) {
	m, err := matrix.New(4, 4, smallEntries())
	require.NoError(t, err)
	require.NoError(t, m.Compress())

	require.NoError(t, m.Set(2, 2, 9)) // slot exists in the pattern
	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	require.NoError(t, m.Add(2, 2, 1)) // accumulate works on pattern slots too
	v, _ = m.At(2, 2)
	require.Equal(t, 10.0, v)
}

// TestSetRejectsNaNBothModes ensures the numeric policy guards writes in
// both representations.
func TestSetRejectsNaNBothModes(t *testing.T) {
	m, err := matrix.New(4, 4, smallEntries())
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)

	require.NoError(t, m.Compress())
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestNewCSRValidation exercises the triple layout validator through the
// compressed constructor.
func TestNewCSRValidation(t *testing.T) {
	offsets := []int{0, 1, 1, 2, 3}
	indices := []int{0, 2, 3}
	values := []float64{4, -17, 4}

	// Valid triple constructs a compressed matrix directly.
	m, err := matrix.NewCSR(4, 4, offsets, indices, values)
	require.NoError(t, err)
	require.True(t, m.IsCompressed())
	require.Equal(t, 3, m.NNZ())

	// Wrong offsets length for the declared row count.
	_, err = matrix.NewCSR(5, 4, offsets, indices, values)
	require.ErrorIs(t, err, matrix.ErrCorruptLayout)

	// Decreasing offsets.
	_, err = matrix.NewCSR(4, 4, []int{0, 2, 1, 2, 3}, indices, values)
	require.ErrorIs(t, err, matrix.ErrCorruptLayout)

	// Tail must equal nnz.
	_, err = matrix.NewCSR(4, 4, []int{0, 1, 1, 2, 2}, indices, values)
	require.ErrorIs(t, err, matrix.ErrCorruptLayout)

	// Column index outside the declared width.
	_, err = matrix.NewCSR(4, 3, offsets, indices, values)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewCSCConstruction checks the column-major compressed constructor and
// its storage-order tag.
func TestNewCSCConstruction(t *testing.T) {
	// Same fixture matrix in CSC: columns 0..3, rows in indices.
	offsets := []int{0, 1, 1, 2, 3}
	indices := []int{0, 2, 3}
	values := []float64{4, -17, 4}

	m, err := matrix.NewCSC(4, 4, offsets, indices, values)
	require.NoError(t, err)
	require.Equal(t, matrix.ColMajor, m.Order())

	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, -17.0, v)
}

// TestOwnershipCopyVsAdopt pins the two ownership policies: the default
// copies the caller's map, WithAdoptEntries borrows it destructively.
func TestOwnershipCopyVsAdopt(t *testing.T) {
	// Default: the caller's map survives Compress untouched.
	src := smallEntries()
	m, err := matrix.New(4, 4, src)
	require.NoError(t, err)
	require.NoError(t, m.Compress())
	require.Len(t, src, 3) // caller copy intact

	// Adopt: the matrix owns the map; Compress releases it.
	src = smallEntries()
	m, err = matrix.New(4, 4, src, matrix.WithAdoptEntries())
	require.NoError(t, err)
	require.NoError(t, m.Compress())
	require.True(t, m.IsCompressed())
}

// TestWithStorageOrderPanicsOnInvalid pins the programmer-error contract of
// the option constructor.
func TestWithStorageOrderPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithStorageOrder(matrix.StorageOrder(42)) })
}

// TestOrderedCoords pins the two coordinate comparators directly.
func TestOrderedCoords(t *testing.T) {
	entries := matrix.Entries[float64]{
		{Row: 1, Col: 0}: 1,
		{Row: 0, Col: 1}: 2,
		{Row: 0, Col: 0}: 3,
	}

	rowOrder := matrix.OrderedCoords(entries, matrix.RowMajor)
	require.Equal(t, []matrix.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, rowOrder)

	colOrder := matrix.OrderedCoords(entries, matrix.ColMajor)
	require.Equal(t, []matrix.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}}, colOrder)
}

// TestStringDumps checks both debug dump shapes.
func TestStringDumps(t *testing.T) {
	m, err := matrix.New(4, 4, smallEntries())
	require.NoError(t, err)

	uncompressed := "[0, 0] = 4\n[2, 2] = -17\n[3, 3] = 4\n"
	require.Equal(t, uncompressed, m.String())

	require.NoError(t, m.Compress())
	compressed := "Compression format: row-major (CSR)\n" +
		"offsets = [0 1 1 2 3]\n" +
		"indices = [0 2 3]\n" +
		"values  = [4 -17 4]\n"
	require.Equal(t, compressed, m.String())
}
