package alphatree

import "errors"

// Sentinel errors for alphatree operations.
var (
	// ErrInvalidLeafCount indicates NewArena/NewBuilder was asked to
	// build over a negative leaf count.
	ErrInvalidLeafCount = errors.New("alphatree: leaf count must be non-negative")

	// ErrVertexRange indicates an edge endpoint lies outside [0, leafCount).
	ErrVertexRange = errors.New("alphatree: edge endpoint out of range")
)

// contractViolation panics with a uniform prefix, matching uf's
// treatment of programmer errors as non-recoverable.
func contractViolation(msg string) {
	panic("alphatree: contract violation: " + msg)
}
