package mmio

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed size line ("rows cols
	// nnz"), or non-positive dimensions / negative nnz.
	ErrBadHeader = errors.New("mmio: bad MatrixMarket header")

	// ErrBadEntry indicates a malformed entry line, an index outside the
	// declared dimensions, or fewer entry lines than the header promised.
	ErrBadEntry = errors.New("mmio: bad MatrixMarket entry")
)
