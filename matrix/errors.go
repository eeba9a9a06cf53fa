// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the operation
// boundary; callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (rows <= 0 or cols <= 0). Constructors must validate shape before
	// touching any entry data.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// matrix's fixed dimensions. Public indexers (At/Set/Add) and entry
	// ingestion MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between the matrix
	// and an operand, e.g. MulVec with len(x) != Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilVector indicates that a nil vector was passed where a value
	// vector is required.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrStructuralModification signals an attempt to write a coordinate that
	// is not part of a compressed matrix's fixed sparsity pattern. The caller
	// must Uncompress first; the compressed arrays are left untouched.
	ErrStructuralModification = errors.New("matrix: compressed sparsity pattern is fixed; uncompress first")

	// ErrCorruptLayout signals that caller-supplied compressed arrays violate
	// the CSR/CSC layout invariants (offset length, monotonicity, parallel
	// array lengths).
	ErrCorruptLayout = errors.New("matrix: corrupt compressed layout")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set, Add).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrUnknownNorm marks a NormKind outside the declared enum.
	ErrUnknownNorm = errors.New("matrix: unknown norm kind")
)
