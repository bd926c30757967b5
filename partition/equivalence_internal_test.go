package partition

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/alphatree/alphatree"
	"github.com/katalvlaran/alphatree/pixgraph"
	"github.com/stretchr/testify/require"
)

// componentLevels returns every component's level, sorted ascending —
// a leaf-order-independent fingerprint of a tree's shape: leaf indices
// may differ across build depths, but the level multiset must match
// exactly.
func componentLevels(t *alphatree.Tree) []float64 {
	levels := make([]float64, t.CompCount())
	for c := 0; c < t.CompCount(); c++ {
		levels[c] = t.Level(t.LeafCount() + c)
	}
	sort.Float64s(levels)

	return levels
}

// This file lives in package partition (not partition_test) because it
// needs splitRect/longSide directly: the only way to recover which
// pixel a merged tree's leaf index i corresponds to is to replay the
// exact same recursive split decisions Build made — a parallel build's
// leaf ordering legitimately differs from the depth-0 row-major
// convention, so there is no public API for this translation, only
// this test's mirror of it.

// leafOrder replays Build's recursion without constructing any tree,
// returning, for each final leaf index, the pixel id (root.LocalID)
// it corresponds to — the same concatenation order Absorb produces.
func leafOrder(root, rect pixgraph.Rect, cfg Config, depth int) []int32 {
	if depth <= 0 || longSide(rect) <= cfg.SplitFloor {
		order := make([]int32, rect.LeafCount())
		for i := 0; i < rect.LeafCount(); i++ {
			order[i] = int32(root.LocalID(rect.Point(i)))
		}

		return order
	}
	_, left, right := splitRect(rect)
	lo := leafOrder(root, left, cfg, depth-1)
	ro := leafOrder(root, right, cfg, depth-1)

	return append(lo, ro...)
}

// pixelToLeaf inverts leafOrder: pixelID -> final leaf index.
func pixelToLeaf(order []int32) map[int32]int {
	inv := make(map[int32]int, len(order))
	for leaf, pixelID := range order {
		inv[pixelID] = leaf
	}

	return inv
}

// ancestorChain returns node and every ancestor up to (and including)
// its forest root.
func ancestorChain(t *alphatree.Tree, node int) []int {
	chain := []int{node}
	for {
		p := t.Parent(node)
		if p < 0 {
			return chain
		}
		chain = append(chain, p)
		node = p
	}
}

// lowestCommonLevel returns the level of the lowest common ancestor of
// leaves a and b, and whether they share a root at all (false means the
// underlying graph left them in different forest components).
func lowestCommonLevel(t *alphatree.Tree, a, b int) (float64, bool) {
	inA := make(map[int]bool)
	for _, n := range ancestorChain(t, a) {
		inA[n] = true
	}
	for _, n := range ancestorChain(t, b) {
		if inA[n] {
			return t.Level(n), true
		}
	}

	return 0, false
}

// TestParallelEquivalence_LevelSetsMatchAcrossDepths builds the same
// small image sequentially (depth 0) and with two different forced
// split depths, then checks that every pixel pair's "connected at level
// <= alpha" relationship agrees across all three builds, for every
// alpha actually present as a component level in the sequential tree.
func TestParallelEquivalence_LevelSetsMatchAcrossDepths(t *testing.T) {
	w, h := 14, 11
	img := make([]int, w*h)
	for i := range img {
		img[i] = (i*17 + 5) % 29
	}
	weight := func(a, b pixgraph.Point) float64 {
		d := img[a.Y*w+a.X] - img[b.Y*w+b.X]
		if d < 0 {
			d = -d
		}

		return float64(d)
	}
	rect := pixgraph.Rect{W: w, H: h}
	conn := pixgraph.Conn8

	baseCfg := Config{Packed: true, SplitFloor: 3}

	type run struct {
		depth int
		tree  *alphatree.Tree
		order []int32
	}
	runs := make([]run, 0, 3)
	for _, depth := range []int{0, 1, 3} {
		cfg := baseCfg
		cfg.Depth = depth
		builder, err := Build(rect, conn, weight, cfg)
		require.NoError(t, err)
		tree := builder.Finish(false)
		order := leafOrder(rect, rect, cfg, depth)
		require.Len(t, order, w*h)
		runs = append(runs, run{depth: depth, tree: tree, order: order})
	}

	seq := runs[0]
	seqInv := pixelToLeaf(seq.order)
	pixelIDs := make([]int32, w*h)
	for i := range pixelIDs {
		pixelIDs[i] = int32(i)
	}

	seqLevels := componentLevels(seq.tree)
	for _, r := range runs[1:] {
		if diff := cmp.Diff(seqLevels, componentLevels(r.tree)); diff != "" {
			t.Errorf("depth %d produced a different component level multiset than depth 0 (-seq +depth%d):\n%s", r.depth, r.depth, diff)
		}

		inv := pixelToLeaf(r.order)
		for _, pa := range pixelIDs {
			for _, pb := range pixelIDs {
				if pa >= pb {
					continue
				}
				seqLevel, seqConnected := lowestCommonLevel(seq.tree, seqInv[pa], seqInv[pb])
				otherLevel, otherConnected := lowestCommonLevel(r.tree, inv[pa], inv[pb])
				require.Equal(t, seqConnected, otherConnected, "pixels %d,%d depth %d", pa, pb, r.depth)
				if seqConnected {
					require.InDelta(t, seqLevel, otherLevel, 1e-9, "pixels %d,%d depth %d", pa, pb, r.depth)
				}
			}
		}
	}
}
