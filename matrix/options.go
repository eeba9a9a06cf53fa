// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// DEFAULTS: single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in gatherOptions.
const (
	// DefaultStorageOrder groups entries by row; compression yields CSR.
	DefaultStorageOrder = RowMajor

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion, Set and Add. NaN and ±Inf elements are rejected with
	// ErrNaNInf while the policy is enabled.
	DefaultValidateNaNInf = true

	// DefaultAdoptEntries controls ownership of caller-supplied stores.
	// false ⇒ New copies the entries map (and NewCSR/NewCSC copy the three
	// arrays), leaving the caller's data untouched. true ⇒ the matrix adopts
	// the caller's storage directly, matching the original memory-saving
	// intent of a destructive borrow; the caller must not touch it afterwards.
	DefaultAdoptEntries = false
)

// Internal panic messages (no magic strings).
const panicStorageOrderInvalid = "matrix: WithStorageOrder: order must be RowMajor or ColMajor"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept ...Option and internally resolve them via gatherOptions.
type Options struct {
	order          StorageOrder // DefaultStorageOrder
	validateNaNInf bool         // DefaultValidateNaNInf
	adoptEntries   bool         // DefaultAdoptEntries
}

// WithStorageOrder fixes the matrix's grouping axis for its whole lifetime.
// Implementation:
//   - Stage 1: validate the enum value (programmer error ⇒ panic).
//   - Stage 2: return a setter writing the order into Options.
//
// Inputs:
//   - order: RowMajor or ColMajor.
//
// Errors:
//   - Panics with a stable message when order is outside the enum.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - NewCSR and NewCSC imply the order of their arrays and override this
//     setting; use it with New.
func WithStorageOrder(order StorageOrder) Option {
	if !order.valid() {
		panic(panicStorageOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// While enabled, New/NewCSR/NewCSC reject non-finite input values and
// Set/Add reject non-finite writes with ErrNaNInf.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite values then pass through ingestion and writes unchecked and
// propagate through MulVec and Norm by ordinary float arithmetic.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAdoptEntries transfers ownership of the caller-supplied store to the
// matrix instead of copying it.
// Implementation:
//   - Stage 1: set adoptEntries=true.
//
// Behavior highlights:
//   - New keeps the caller's Entries map as its live coordinate store; the
//     first Compress clears that very map.
//   - NewCSR/NewCSC keep the caller's offsets/indices/values slices; the
//     first Uncompress resets them.
//
// Notes:
//   - This is the destructive-borrow mode: it avoids an O(nnz) copy but the
//     caller must treat the passed-in storage as consumed.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithAdoptEntries() Option {
	return func(o *Options) { o.adoptEntries = true }
}

// WithCopyEntries restores the default copy-on-construction ownership.
// Complexity: O(1).
func WithCopyEntries() Option {
	return func(o *Options) { o.adoptEntries = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		order:          DefaultStorageOrder,
		validateNaNInf: DefaultValidateNaNInf,
		adoptEntries:   DefaultAdoptEntries,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
