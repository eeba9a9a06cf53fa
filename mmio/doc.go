// Package mmio reads and writes sparse matrices in the MatrixMarket
// coordinate text format.
//
// The format is line oriented: any number of comment lines starting with
// '%' (including the "%%MatrixMarket ..." banner), one size line holding
// "rows cols nnz", then nnz entry lines of "row col value" with one-based
// indices. mmio translates indices to the zero-based coordinate mapping the
// matrix package consumes, and back on the way out.
//
// File helpers handle gzip transparently: a path ending in ".gz" is
// decompressed on read and compressed on write.
//
// Malformed input surfaces as the package sentinels ErrBadHeader and
// ErrBadEntry, matched via errors.Is; the matrix package itself never sees
// raw file data.
package mmio
