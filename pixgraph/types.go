package pixgraph

// Point is a pixel coordinate in the image's global coordinate space,
// independent of whichever rectangle is currently being scanned.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned sub-rectangle of the image, in global pixel
// coordinates. Vertex ids returned by Extract for this Rect are local to
// it: id(p) = (p.Y-Y)*W + (p.X-X), i.e. row-major within the rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// LocalID maps a global point inside r to r's local, row-major vertex id.
func (r Rect) LocalID(p Point) int {
	return (p.Y-r.Y)*r.W + (p.X - r.X)
}

// Point converts a local, row-major vertex id back to a global point.
func (r Rect) Point(id int) Point {
	return Point{X: r.X + id%r.W, Y: r.Y + id/r.W}
}

// LeafCount returns the number of pixels (leaves) in r.
func (r Rect) LeafCount() int { return r.W * r.H }

// WeightFunc is the capability contract every caller supplies: a pure,
// total, deterministic dissimilarity between two neighbouring pixels.
type WeightFunc func(a, b Point) float64

// Edge is a single graph edge: two endpoint vertex ids (local to
// whichever Rect produced them) and a scalar weight. Ordering is by
// Weight; ties are broken deterministically by SortEdges, never left
// to sort-algorithm happenstance.
type Edge struct {
	A, B   int32
	Weight float64
}

// SplitAxis names which axis a parallel divide cuts along.
type SplitAxis int

const (
	// SplitVertical cuts a rectangle into a left and a right half.
	SplitVertical SplitAxis = iota
	// SplitHorizontal cuts a rectangle into a top and a bottom half.
	SplitHorizontal
)
