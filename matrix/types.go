// Package matrix: domain types shared by both representations.
// This file intentionally contains ONLY domain-facing types (scalar
// constraint, storage-order and norm tags, coordinate keys). Errors and
// options live in dedicated files (errors.go, options.go) per the package
// conventions.
package matrix

// Scalar enumerates the element types a Matrix can hold: real or complex
// double precision. The set is closed on purpose: the norm and validation
// helpers dispatch on exactly these two types.
type Scalar interface {
	float64 | complex128
}

// StorageOrder selects the primary grouping axis of a matrix. It is fixed at
// construction and immutable thereafter: RowMajor groups entries by row
// (compressing to CSR), ColMajor groups by column (compressing to CSC).
type StorageOrder uint8

const (
	// RowMajor orders coordinates by (row, col); compressed form is CSR.
	RowMajor StorageOrder = iota
	// ColMajor orders coordinates by (col, row); compressed form is CSC.
	ColMajor
)

// String implements fmt.Stringer for debug dumps and error context.
func (o StorageOrder) String() string {
	if o == ColMajor {
		return "col-major (CSC)"
	}
	return "row-major (CSR)"
}

// valid reports whether o is a declared StorageOrder value.
func (o StorageOrder) valid() bool { return o == RowMajor || o == ColMajor }

// NormKind selects which matrix norm Norm computes.
type NormKind uint8

const (
	// Frobenius is sqrt(Σ |a_ij|²) over all stored entries.
	Frobenius NormKind = iota
	// OneNorm is the maximum absolute column sum.
	OneNorm
	// MaxNorm (infinity norm) is the maximum absolute row sum.
	MaxNorm
)

// String implements fmt.Stringer for error context and logs.
func (k NormKind) String() string {
	switch k {
	case Frobenius:
		return "Frobenius"
	case OneNorm:
		return "OneNorm"
	case MaxNorm:
		return "MaxNorm"
	}
	return "unknown"
}

// Coord addresses one matrix entry. Keys are unique within a coordinate
// store; an absent key denotes an implicit zero.
type Coord struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Entries is the caller-facing coordinate mapping accepted by New. The map
// itself is unordered; the storage order of the owning Matrix decides the
// total order used whenever entries are scanned deterministically.
type Entries[T Scalar] map[Coord]T

// primary returns the coordinate component along o's grouping axis.
// Complexity: O(1).
func (o StorageOrder) primary(c Coord) int {
	if o == ColMajor {
		return c.Col
	}
	return c.Row
}

// secondary returns the coordinate component across o's grouping axis.
// Complexity: O(1).
func (o StorageOrder) secondary(c Coord) int {
	if o == ColMajor {
		return c.Row
	}
	return c.Col
}

// coordAt rebuilds a Coord from a (primary, secondary) pair under o.
// Inverse of the primary/secondary projection; used by Uncompress.
func (o StorageOrder) coordAt(primary, secondary int) Coord {
	if o == ColMajor {
		return Coord{Row: secondary, Col: primary}
	}
	return Coord{Row: primary, Col: secondary}
}

// less is the total order on coordinates under o: primary axis first,
// secondary axis as tie-break. The compression scan relies on this order to
// receive entries already grouped by the compression axis.
func (o StorageOrder) less(a, b Coord) bool {
	pa, pb := o.primary(a), o.primary(b)
	if pa != pb {
		return pa < pb
	}
	return o.secondary(a) < o.secondary(b)
}
