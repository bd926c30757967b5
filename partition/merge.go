package partition

import (
	"github.com/katalvlaran/alphatree/alphatree"
	"github.com/katalvlaran/alphatree/pixgraph"
)

// mergeHalves joins the two halves back together: absorb right's arena
// into left's, extract the sorted border connector edges, and fold
// each one in with Builder.PathZip (the splice algorithm itself lives
// in alphatree/merge.go).
//
// left is mutated in place and becomes the combined builder; right must
// not be used again afterward.
func mergeHalves(left, right *alphatree.Builder, leftRect, rightRect pixgraph.Rect, axis pixgraph.SplitAxis, conn pixgraph.Connectivity, w pixgraph.WeightFunc) {
	leafOffset := left.Absorb(right)

	for _, e := range pixgraph.Connectors(leftRect, rightRect, axis, conn, w) {
		left.PathZip(int(e.A), int(e.B)+leafOffset, e.Weight)
	}
}
