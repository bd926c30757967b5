package alphatree

import "github.com/katalvlaran/alphatree/pixgraph"

// AltitudeBuilder builds the altitude-tree / binary partition tree
// variant: every successful union allocates exactly one new component
// node with exactly two children, never fusing same-layer siblings the
// way Builder does. A connected input of L leaves always yields exactly
// L-1 components.
type AltitudeBuilder struct {
	*Builder
}

// NewAltitudeBuilder allocates an AltitudeBuilder over leafCount
// leaves. Its embedded Builder is marked no-fuse, so that PathZip (used
// by the parallel divide-and-conquer merge in partition, via the
// embedded *Builder) never collapses two distinct components into one
// the way the alpha-tree's same-layer fusion does - see PathZip and
// zipChains in merge.go.
func NewAltitudeBuilder(leafCount int, packed bool) *AltitudeBuilder {
	b := NewBuilder(leafCount, packed)
	b.noFuse = true

	return &AltitudeBuilder{Builder: b}
}

// Consume feeds a non-decreasing-weight edge stream through the
// altitude-tree main loop. Unlike Builder.Consume there is no layer
// tracking: every edge that joins two distinct components allocates a
// fresh binary parent node immediately.
func (b *AltitudeBuilder) Consume(edges []pixgraph.Edge) {
	a := b.arena
	for _, e := range edges {
		ha := b.uf.FindUpdate(int(e.A))
		hb := b.uf.FindUpdate(int(e.B))
		if ha == hb {
			continue
		}

		na := b.uf.Data(ha)
		nb := b.uf.Data(hb)
		n := a.newBinaryNode(e.Weight, na, nb)
		b.uf.MergeSet(ha, hb, n)
	}
}

// newBinaryNode allocates a new component with exactly the two given
// children, at the given weight.
func (a *Arena) newBinaryNode(weight float64, na, nb uint32) uint32 {
	n := uint32(a.nodeCount)
	a.nodeCount++
	ci := n - uint32(a.leafCount)
	a.parent[na] = n
	a.parent[nb] = n
	a.parent[n] = rootSentinel
	a.compLevel[ci] = weight
	a.mergeRedirect[ci] = n

	return n
}

// CollapseUnaryChains removes every component that has exactly one
// child, splicing that child directly under the component's former
// parent (or making it a new forest root, if the unary component was
// itself a root). A plain Builder/AltitudeBuilder construction never
// produces these — lift and attach always install at least two
// children together — but the partition package's cross-tile merge can
// leave one behind where a seam passes straight through an existing
// node. It is an explicit, opt-in simplification — left off by default
// so a caller comparing trees across build configurations sees the
// uncollapsed shape unless it asked otherwise. Requires the child list
// to have been built, and rebuilds it afterward.
func (t *Tree) CollapseUnaryChains() {
	if t.childOffset == nil {
		contractViolation("CollapseUnaryChains called without a built child list")
	}

	compCount := t.CompCount()
	keep := make([]bool, compCount)
	for ci := 0; ci < compCount; ci++ {
		keep[ci] = len(t.ChildrenOf(ci)) != 1
	}

	// parentRedirect[ci], for a dropped (non-kept) component, names the
	// raw node (or rootSentinel) that anything pointing at it should be
	// repointed to instead. Resolved with memoized recursion rather than
	// an index-ordered sweep: a tree that went through the parallel
	// cross-tile merge can hold a parent at a lower raw index than its
	// child, so visiting order cannot guarantee the parent's entry is
	// final first.
	parentRedirect := make([]uint32, compCount)
	resolved := make([]bool, compCount)
	var resolve func(ci int) uint32
	resolve = func(ci int) uint32 {
		if resolved[ci] {
			return parentRedirect[ci]
		}
		p := t.parent[uint32(t.leafCount+ci)]
		switch {
		case p == rootSentinel:
			parentRedirect[ci] = rootSentinel
		case keep[int(p)-t.leafCount]:
			parentRedirect[ci] = p
		default:
			parentRedirect[ci] = resolve(int(p) - t.leafCount)
		}
		resolved[ci] = true

		return parentRedirect[ci]
	}
	for ci := 0; ci < compCount; ci++ {
		if !keep[ci] {
			resolve(ci)
		}
	}

	for i := 0; i < t.nodeCount; i++ {
		p := t.parent[i]
		if p == rootSentinel {
			continue
		}
		pci := int(p) - t.leafCount
		if !keep[pci] {
			t.parent[i] = parentRedirect[pci]
		}
	}

	redirect := make([]uint32, compCount)
	for ci := 0; ci < compCount; ci++ {
		if keep[ci] {
			redirect[ci] = uint32(t.leafCount + ci)
		} else {
			redirect[ci] = rootSentinel // never a valid idx: marks "dropped"
		}
	}

	a := (*Arena)(t)
	a.recompact(redirect)
	a.buildChildren()
}
