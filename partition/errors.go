package partition

import "errors"

// Sentinel errors for partition operations.
var (
	// ErrInvalidDepth indicates Build was asked for a negative split
	// depth.
	ErrInvalidDepth = errors.New("partition: depth must be non-negative")
)
