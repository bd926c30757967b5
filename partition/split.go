package partition

import "github.com/katalvlaran/alphatree/pixgraph"

// cacheLineAlign keeps the two halves' parent-array writes off each
// other's cache lines: the split column is rounded to a multiple of
// this, and 16 four-byte parent slots span a typical 64-byte line.
const cacheLineAlign = 16

// longSide returns the longer of rect's two dimensions, the quantity
// Build's split-floor check and splitRect's axis choice both key off.
func longSide(rect pixgraph.Rect) int {
	if rect.W >= rect.H {
		return rect.W
	}

	return rect.H
}

// splitRect splits rect along its longer side, returning the axis the
// cut was made on and the two resulting
// sub-rectangles in the order a caller should pass them to
// pixgraph.Connectors.
func splitRect(rect pixgraph.Rect) (pixgraph.SplitAxis, pixgraph.Rect, pixgraph.Rect) {
	if rect.W >= rect.H {
		cut := alignedCut(rect.W)
		left := pixgraph.Rect{X: rect.X, Y: rect.Y, W: cut, H: rect.H}
		right := pixgraph.Rect{X: rect.X + cut, Y: rect.Y, W: rect.W - cut, H: rect.H}

		return pixgraph.SplitVertical, left, right
	}

	cut := alignedCut(rect.H)
	top := pixgraph.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: cut}
	bottom := pixgraph.Rect{X: rect.X, Y: rect.Y + cut, W: rect.W, H: rect.H - cut}

	return pixgraph.SplitHorizontal, top, bottom
}

// alignedCut picks a split offset near total/2, rounded down to the
// nearest cacheLineAlign multiple, and clamped to [1, total-1] so both
// halves are always non-empty. Callers only reach this once the side
// being split already clears Config.SplitFloor (>= 64 by default), so
// the clamp is a defensive edge case, not the common path.
func alignedCut(total int) int {
	mid := total / 2
	if mid < 1 {
		mid = 1
	}
	cut := (mid / cacheLineAlign) * cacheLineAlign
	if cut < 1 {
		cut = mid
	}
	if cut >= total {
		cut = total - 1
	}
	if cut < 1 {
		cut = 1
	}

	return cut
}
