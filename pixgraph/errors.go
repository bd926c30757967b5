package pixgraph

import "errors"

// Sentinel errors for pixgraph operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height was
	// supplied where a positive rectangle is required.
	ErrInvalidDimensions = errors.New("pixgraph: width and height must be positive")

	// ErrUnknownConnectivity indicates a Connectivity value outside the
	// four supported modes.
	ErrUnknownConnectivity = errors.New("pixgraph: unknown connectivity")

	// ErrMismatchedRects indicates Connectors was asked to extract a
	// border between two rectangles that do not actually share one.
	ErrMismatchedRects = errors.New("pixgraph: rectangles do not share a border")
)
