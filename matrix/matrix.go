// Package matrix: the Matrix entity. Constructors, accessors, element
// access and the debug dump. Conversion, multiplication and norm kernels
// live in compress.go, multiply.go and norms.go (same package) to keep
// roles clean.
package matrix

import (
	"fmt"
	"strings"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew        = "New"
	opNewCSR     = "NewCSR"
	opNewCSC     = "NewCSC"
	opAt         = "At"
	opSet        = "Set"
	opAdd        = "Add"
	opCompress   = "Compress"
	opUncompress = "Uncompress"
	opMulVec     = "MulVec"
	opNorm       = "Norm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match with errors.Is. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a sparse rows×cols matrix of T holding exactly one of two
// internal representations at a time:
//
//   - uncompressed: the coordinate store `entries` is live;
//   - compressed:   the triple `offsets`/`indices`/`values` is live.
//
// The storage-order tag is fixed at construction and decides both the
// coordinate ordering and the compressed flavor (CSR for RowMajor, CSC for
// ColMajor). Dimensions are explicit and immutable; they are never inferred
// from the data, so fully empty rows and columns behave like any other.
//
// A Matrix is NOT safe for concurrent mutation: Compress, Uncompress, Set and
// Add mutate in place. Concurrent read-only access is safe once no mutator
// runs.
type Matrix[T Scalar] struct {
	rows, cols int          // fixed dimensions, validated > 0
	order      StorageOrder // fixed grouping axis
	compressed bool         // which representation is live
	opts       Options      // resolved construction options

	entries Entries[T] // live iff !compressed

	offsets []int // live iff compressed; length primaryDim()+1
	indices []int // secondary-axis index per non-zero
	values  []T   // value per non-zero, parallel to indices
}

// New constructs an uncompressed Matrix from a coordinate mapping.
// Implementation:
//   - Stage 1: resolve options; validate shape, coordinate ranges and (under
//     the numeric policy) value finiteness.
//   - Stage 2: copy the mapping (or adopt it under WithAdoptEntries) and
//     return the matrix in uncompressed mode.
//
// Behavior highlights:
//   - A nil or empty mapping is legal: the result is an all-zero matrix.
//   - Under WithAdoptEntries the caller's map becomes the live store and is
//     cleared by the first Compress; do not reuse it.
//
// Inputs:
//   - rows, cols: explicit dimensions, both > 0.
//   - entries: zero-based (row, col) → value mapping; absent keys are zeros.
//   - opts: WithStorageOrder, numeric policy, ownership policy.
//
// Returns:
//   - *Matrix[T]: uncompressed matrix in the requested storage order.
//
// Errors:
//   - ErrBadShape, ErrOutOfRange, ErrNaNInf (all wrapped with "New").
//
// Complexity:
//   - Time O(nnz) validation plus O(nnz) copy; Space O(nnz).
func New[T Scalar](rows, cols int, entries Entries[T], opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if err := ValidateEntries(rows, cols, entries, o.validateNaNInf); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	// Ownership policy: copy keeps the caller's map intact; adopt borrows it
	// destructively (the first Compress clears it).
	store := entries
	if !o.adoptEntries || store == nil {
		store = cloneEntries(entries)
	}

	return &Matrix[T]{rows: rows, cols: cols, order: o.order, opts: o, entries: store}, nil
}

// NewCSR constructs a compressed row-major Matrix directly from a CSR triple.
// Implementation:
//   - Stage 1: resolve options (order forced to RowMajor); validate shape and
//     the full triple layout via ValidateTriple.
//   - Stage 2: copy (or adopt) the three arrays and return the matrix in
//     compressed mode.
//
// Inputs:
//   - offsets: length rows+1, offsets[0]==0, monotone; offsets[rows]==nnz.
//   - indices: column index per non-zero, grouped contiguously by row.
//   - values:  value per non-zero, parallel to indices.
//
// Errors:
//   - ErrBadShape, ErrCorruptLayout, ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows + nnz).
func NewCSR[T Scalar](rows, cols int, offsets, indices []int, values []T, opts ...Option) (*Matrix[T], error) {
	return newCompressed(opNewCSR, RowMajor, rows, cols, offsets, indices, values, opts...)
}

// NewCSC constructs a compressed column-major Matrix from a CSC triple.
// Mirror of NewCSR with rows and columns swapped: offsets has length cols+1
// and indices holds row indices grouped contiguously by column.
func NewCSC[T Scalar](rows, cols int, offsets, indices []int, values []T, opts ...Option) (*Matrix[T], error) {
	return newCompressed(opNewCSC, ColMajor, rows, cols, offsets, indices, values, opts...)
}

// newCompressed is the shared body of NewCSR/NewCSC. The order parameter is
// authoritative: a WithStorageOrder option is overridden, because the arrays
// themselves already encode the orientation.
func newCompressed[T Scalar](tag string, order StorageOrder, rows, cols int, offsets, indices []int, values []T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	o.order = order
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	m := &Matrix[T]{rows: rows, cols: cols, order: order, opts: o, compressed: true}
	if err := ValidateTriple(m.primaryDim(), m.secondaryDim(), offsets, indices, values, o.validateNaNInf); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if o.adoptEntries {
		m.offsets, m.indices, m.values = offsets, indices, values
	} else {
		m.offsets, m.indices, m.values = cloneTriple(offsets, indices, values)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Order returns the storage-order tag fixed at construction. Complexity: O(1).
func (m *Matrix[T]) Order() StorageOrder { return m.order }

// IsCompressed reports which representation is live. Complexity: O(1).
func (m *Matrix[T]) IsCompressed() bool { return m.compressed }

// NNZ returns the number of explicitly stored entries. Complexity: O(1).
func (m *Matrix[T]) NNZ() int {
	if m.compressed {
		return len(m.values)
	}
	return len(m.entries)
}

// primaryDim is the slot count along the grouping axis (rows for RowMajor,
// cols for ColMajor). Complexity: O(1).
func (m *Matrix[T]) primaryDim() int {
	if m.order == ColMajor {
		return m.cols
	}
	return m.rows
}

// secondaryDim is the extent across the grouping axis. Complexity: O(1).
func (m *Matrix[T]) secondaryDim() int {
	if m.order == ColMajor {
		return m.rows
	}
	return m.cols
}

// At returns the stored value at (row, col), or the zero value if the
// coordinate is not part of the pattern.
// Implementation:
//   - Stage 1: bounds check against the fixed dimensions.
//   - Stage 2: map lookup (uncompressed) or slot-range scan (compressed).
//
// Behavior highlights:
//   - Mode-invariant: At before Compress equals At after Compress.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - Uncompressed O(1) expected; compressed O(k) for slot width k.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := ValidateIndex(m.rows, m.cols, row, col); err != nil {
		return zero, matrixErrorf(opAt, err)
	}

	if !m.compressed {
		return m.entries[Coord{Row: row, Col: col}], nil // absent key yields zero
	}

	c := Coord{Row: row, Col: col}
	if k, ok := findSlot(m.offsets, m.indices, m.order.primary(c), m.order.secondary(c)); ok {
		return m.values[k], nil
	}

	return zero, nil
}

// Set assigns v at (row, col).
// Implementation:
//   - Stage 1: bounds check; finite-value check under the numeric policy.
//   - Stage 2: uncompressed: insert or overwrite the map entry;
//     compressed: overwrite the existing pattern slot, or fail.
//
// Behavior highlights:
//   - The compressed sparsity pattern is immutable: writing a coordinate with
//     no slot returns ErrStructuralModification and leaves all three arrays
//     untouched. Uncompress first to change the pattern.
//   - Uncompressed Set of an explicit zero stores the entry (the pattern
//     gains that coordinate on the next Compress), matching the original
//     map-insert semantics.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf, ErrStructuralModification.
//
// Complexity:
//   - Uncompressed O(1) expected; compressed O(k) for slot width k.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := ValidateIndex(m.rows, m.cols, row, col); err != nil {
		return matrixErrorf(opSet, err)
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return matrixErrorf(opSet, ErrNaNInf)
	}

	c := Coord{Row: row, Col: col}
	if !m.compressed {
		m.entries[c] = v
		return nil
	}

	k, ok := findSlot(m.offsets, m.indices, m.order.primary(c), m.order.secondary(c))
	if !ok {
		return matrixErrorf(opSet, ErrStructuralModification)
	}
	m.values[k] = v

	return nil
}

// Add accumulates delta onto the entry at (row, col), the get-or-zero
// read-modify-write the original exposed through a mutable reference, split
// into an explicit operation.
// Implementation:
//   - Stage 1: bounds check; finite-delta check under the numeric policy.
//   - Stage 2: uncompressed: entries[c] += delta, inserting a zero-origin
//     entry when absent; compressed: accumulate onto the existing slot, or
//     fail with ErrStructuralModification.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf, ErrStructuralModification.
//
// Complexity:
//   - Uncompressed O(1) expected; compressed O(k) for slot width k.
func (m *Matrix[T]) Add(row, col int, delta T) error {
	if err := ValidateIndex(m.rows, m.cols, row, col); err != nil {
		return matrixErrorf(opAdd, err)
	}
	if m.opts.validateNaNInf && isNonFinite(delta) {
		return matrixErrorf(opAdd, ErrNaNInf)
	}

	c := Coord{Row: row, Col: col}
	if !m.compressed {
		m.entries[c] += delta // absent key reads as zero, so this inserts
		return nil
	}

	k, ok := findSlot(m.offsets, m.indices, m.order.primary(c), m.order.secondary(c))
	if !ok {
		return matrixErrorf(opAdd, ErrStructuralModification)
	}
	m.values[k] += delta

	return nil
}

// String implements fmt.Stringer as a debugging aid, not a serialization
// format. Uncompressed: one "[r, c] = v" line per entry in storage order.
// Compressed: the three raw arrays labeled by orientation, mirroring the
// original dump shape.
// Complexity: O(nnz log nnz) uncompressed (ordered scan), O(nnz) compressed.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	if !m.compressed {
		for _, c := range orderedCoords(m.entries, m.order) {
			fmt.Fprintf(&b, "[%d, %d] = %v\n", c.Row, c.Col, m.entries[c])
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Compression format: %s\n", m.order)
	fmt.Fprintf(&b, "offsets = %v\n", m.offsets)
	fmt.Fprintf(&b, "indices = %v\n", m.indices)
	fmt.Fprintf(&b, "values  = %v\n", m.values)

	return b.String()
}
