package uf

import "errors"

// Sentinel errors for uf operations.
var (
	// ErrInvalidSize indicates a non-positive or overflowing arena size
	// was requested from New.
	ErrInvalidSize = errors.New("uf: invalid arena size")

	// ErrIndexRange indicates an index passed to Find/Update/Merge lies
	// outside [0, n).
	ErrIndexRange = errors.New("uf: index out of range")
)

// contractViolation panics with a uniform prefix. Merge on non-roots,
// merge of an element with itself, and out-of-range indices are
// programming errors, not recoverable runtime conditions.
func contractViolation(msg string) {
	panic("uf: contract violation: " + msg)
}
