package alphatree

import "github.com/katalvlaran/alphatree/uf"

// This file hosts the raw-arena primitives the parallel
// divide-and-conquer builder needs: joining two independently-built,
// disjoint-leaf tiles into one combined arena (Absorb), and folding a
// cross-tile connector edge into the combined structure (MergeRoots).
//
// They live here, as exported Builder methods, rather than in the
// partition package: Arena's fields are unexported, and Go gives a
// second package no way to mutate them directly. partition drives the
// recursion and owns the concurrency; these methods are its only way
// to touch the arena it is assembling.

// Absorb merges src's arena into b's, in place. b's leaves keep their
// indices; src's leaves and components are shifted past b's existing
// range. b's own components are likewise renumbered to sit after the
// combined leaf range. The two builders must have been built over
// disjoint leaf sets (partition's per-tile Builders always are).
//
// A fresh union-find is seeded over the combined leaf range, one root
// per tile-local component already discovered (found by walking each
// leaf to its current live top) - it would be simpler to try to splice
// the two tiles' compressed union-find forests together directly, but
// the combined index space means their handles don't line up, and the
// tiles are small enough that a one-off top-of-leaf walk per leaf costs
// nothing next to the eventual O(n) compaction pass.
//
// src must not be used again afterward. Absorb returns the leaf-index
// offset applied to src (= b's pre-absorb leaf count), which the caller
// must add to any src-local leaf id (for example, pixgraph.Connectors'
// Edge.B, which is documented as local to its own side) before handing
// it to MergeRoots.
//
// Complexity: O(leafCount + compCount) of the combined arena.
func (b *Builder) Absorb(src *Builder) int {
	dst, srcA := b.arena, src.arena

	Lb, Ls := dst.leafCount, srcA.leafCount
	Cb, Cs := dst.nodeCount-Lb, srcA.nodeCount-Ls

	newLeafCount := Lb + Ls
	newCompCount := Cb + Cs
	newNodeCount := newLeafCount + newCompCount
	newCap := 2*newLeafCount - 1
	if newNodeCount > newCap {
		newCap = newNodeCount
	}

	remapB := func(raw uint32) uint32 {
		switch {
		case raw == rootSentinel:
			return rootSentinel
		case int(raw) < Lb:
			return raw // b's own leaves keep their index
		default:
			return raw + uint32(Ls) // b's component: shift past src's leaves
		}
	}
	remapSrc := func(raw uint32) uint32 {
		switch {
		case raw == rootSentinel:
			return rootSentinel
		case int(raw) < Ls:
			return raw + uint32(Lb) // src leaf: shift past b's leaves
		default:
			return raw + uint32(Lb+Cb) // src component: shift past b's leaves and components
		}
	}

	parent := make([]uint32, newCap)
	leafLevel := make([]float64, newLeafCount)
	compLevel := make([]float64, newCap-newLeafCount)
	mergeRedirect := make([]uint32, newCap-newLeafCount)

	for i := 0; i < Lb; i++ {
		parent[i] = remapB(dst.parent[i])
		leafLevel[i] = dst.leafLevel[i]
	}
	for i := 0; i < Ls; i++ {
		parent[Lb+i] = remapSrc(srcA.parent[i])
		leafLevel[Lb+i] = srcA.leafLevel[i]
	}
	for ci := 0; ci < Cb; ci++ {
		newIdx := uint32(newLeafCount + ci)
		parent[newIdx] = remapB(dst.parent[uint32(Lb+ci)])
		compLevel[ci] = dst.compLevel[ci]
		mergeRedirect[ci] = remapB(dst.mergeRedirect[ci])
	}
	for ci := 0; ci < Cs; ci++ {
		newIdx := uint32(newLeafCount + Cb + ci)
		parent[newIdx] = remapSrc(srcA.parent[uint32(Ls+ci)])
		compLevel[Cb+ci] = srcA.compLevel[ci]
		mergeRedirect[Cb+ci] = remapSrc(srcA.mergeRedirect[ci])
	}

	combined := &Arena{
		leafCount:     newLeafCount,
		nodeCount:     newNodeCount,
		nodeCap:       newCap,
		invalidCount:  dst.invalidCount + srcA.invalidCount,
		parent:        parent,
		leafLevel:     leafLevel,
		compLevel:     compLevel,
		mergeRedirect: mergeRedirect,
	}

	identity := func(i int) uint32 { return uint32(i) }
	var combinedUF uf.Arena[uint32]
	if b.packed {
		combinedUF = uf.NewPacked(newLeafCount, identity)
	} else {
		combinedUF = uf.New(newLeafCount, identity)
	}

	handleOfTop := make(map[uint32]int, newLeafCount)
	for i := 0; i < newLeafCount; i++ {
		top := combined.topOf(uint32(i))
		h := combinedUF.FindUpdate(i)
		if prev, ok := handleOfTop[top]; ok {
			handleOfTop[top] = combinedUF.MergeSet(h, prev, top)
		} else {
			combinedUF.SetData(h, top)
			handleOfTop[top] = h
		}
	}

	b.arena = combined
	b.uf = combinedUF

	return Lb
}

// topOf walks parent pointers from raw to its current live root, with
// no path compression - used only once per leaf, at Absorb time.
func (a *Arena) topOf(raw uint32) uint32 {
	for a.parent[raw] != rootSentinel {
		raw = a.parent[raw]
	}

	return raw
}

// level returns the current weight level of any live raw node, leaf or
// component.
func (a *Arena) level(raw uint32) float64 {
	if int(raw) < a.leafCount {
		return a.leafLevel[raw]
	}

	return a.compLevel[raw-uint32(a.leafCount)]
}

// fuseInto folds nb under na, the same-layer-sibling case of
// Builder.attach: if nb is itself a component it is invalidated for the
// next compact() to remove, since na now stands in for it.
func (a *Arena) fuseInto(nb, na uint32) {
	a.parent[nb] = na
	if int(nb) >= a.leafCount {
		a.invalidCount++
		a.mergeRedirect[nb-uint32(a.leafCount)] = na
	}
}

// liveHead resolves a chain head to its current live representative:
// an already-invalidated component stands in for the (same-level)
// winner it was fused into, reachable through its parent pointer. Live
// components and the root sentinel pass through unchanged. Keeping the
// zip walk on live heads only means fuseInto never targets an invalid
// node - a second redirect would overwrite the first and split one
// level's children between two survivors.
func (a *Arena) liveHead(h uint32) uint32 {
	for h != rootSentinel && int(h) >= a.leafCount && a.mergeRedirect[h-uint32(a.leafCount)] != h {
		h = a.parent[h]
	}

	return h
}

// belowWeight climbs from node (a leaf or component already known to be
// part of the tile being merged) to the highest ancestor whose own
// level is still strictly below w - the point along this leaf's
// existing path where a new level-w node belongs. It stops at node
// itself if node's current parent is already at or above w, and at a
// forest root if the path never reaches w at all.
func (a *Arena) belowWeight(node uint32, w float64) uint32 {
	for {
		p := a.parent[node]
		if p == rootSentinel || a.level(p) >= w {
			return node
		}
		node = p
	}
}

// zipChains merges the two ancestor chains above na and nb (pa and pb,
// either of which may be rootSentinel) into one, splicing n in at the
// bottom. It is a merge-by-level walk, exactly like merging two sorted
// lists: whichever side is lower re-homes under the other side's
// current node and climbs one step.
//
// fuse selects what happens when both heads sit at exactly the same
// level. Alpha-tree mode (fuse == true) folds them together directly
// via fuseInto, which invalidates the loser
// for the next compact() pass - correct for alpha-tree, since its
// layers are defined as exactly this kind of same-level collapse.
// Altitude-tree mode (fuse == false) must never call fuseInto: doing so
// would silently drop one of the two sides' components, breaking the
// "exactly L-1 components" invariant a strictly-binary tree guarantees.
// Instead, ties are broken deterministically by raw index and handled
// by the same re-homing step as a genuine "<", so both heads survive as
// distinct, still-pending nodes - AltitudeBuilder's PathZip (via the
// embedded Builder) always calls this with fuse == false.
//
// It returns the surviving structure's new top - the node
// MergeRoots/PathZip should record as this component's live union-find
// handle.
//
// Neither chain needs walking further once the other runs out: the
// remaining chain's own ancestors were already valid and untouched
// before this call, so hooking the newly-placed node under that chain's
// current head is enough - topOf finds the real top from there.
func (a *Arena) zipChains(n, pa, pb uint32, fuse bool) uint32 {
	cur := n
	for {
		switch {
		case pa == rootSentinel && pb == rootSentinel:
			a.parent[cur] = rootSentinel
			return cur
		case pa == rootSentinel:
			a.parent[cur] = pb
			return a.topOf(pb)
		case pb == rootSentinel:
			a.parent[cur] = pa
			return a.topOf(pa)
		case fuse && a.level(pa) == a.level(pb):
			winner, loser := pa, pb
			if pb < pa {
				winner, loser = pb, pa
			}
			nextWinner, nextLoser := a.liveHead(a.parent[winner]), a.liveHead(a.parent[loser])
			a.fuseInto(loser, winner)
			a.parent[cur] = winner
			cur = winner
			pa, pb = nextWinner, nextLoser
		case a.level(pa) < a.level(pb) || (a.level(pa) == a.level(pb) && pa < pb):
			next := a.liveHead(a.parent[pa])
			a.parent[cur] = pa
			cur = pa
			pa = next
		default:
			next := a.liveHead(a.parent[pb])
			a.parent[cur] = pb
			cur = pb
			pb = next
		}
	}
}

// PathZip folds the cross-tile connector edge (i, j, w) into the
// combined arena Absorb built. i and j are leaf ids already translated
// into the combined leaf-index space (see the offset Absorb returns).
//
// Unlike a single sequential Consume run, the two tiles being joined
// may each already carry real internal structure above either leaf, at
// levels unrelated to w and to each other - so the edge cannot simply
// be linked in at whichever top the union-find happens to be tracking
// (that top can sit well above w, with the correct splice point some
// way further down each leaf's actual path). PathZip instead finds
// that point directly: belowWeight walks each leaf up to the highest
// ancestor still under w; the level-w joint between the two sides is
// then either a fresh node at w - only when w sits strictly below both
// sides' next ancestors - or an already-existing level-w ancestor on
// either side, reused rather than duplicated so that the merged tree
// keeps at most one component per (connected component, weight) pair,
// exactly as a sequential build over the union rectangle would.
// zipChains finally reconciles whatever pre-existing structure sat
// above the joint on both sides.
//
// AltitudeBuilder's embedded Builder sets noFuse, which skips the reuse
// cases entirely (a strictly binary tree allocates one node per
// accepted edge, equal weight values or not) and keeps zipChains from
// collapsing two components that merely happen to share a weight value
// - either would silently change the merged tree's required L-1
// component count.
//
// Complexity: O(depth(i) + depth(j)) amortised; each node visited is
// either consumed by the joint or re-homed at most once before the
// next compact() call.
func (b *Builder) PathZip(i, j int, w float64) int {
	ha := b.uf.FindUpdate(i)
	hb := b.uf.FindUpdate(j)
	if ha == hb {
		// Already joined by an earlier (lower-or-equal-weight) connector;
		// this edge closes a redundant cycle, same as Consume's skip.
		return int(b.uf.Data(ha))
	}

	a := b.arena
	na := a.belowWeight(uint32(i), w)
	nb := a.belowWeight(uint32(j), w)
	pa, pb := a.liveHead(a.parent[na]), a.liveHead(a.parent[nb])

	if !b.noFuse {
		aAtW := pa != rootSentinel && a.level(pa) == w
		bAtW := pb != rootSentinel && a.level(pb) == w
		switch {
		case aAtW && bAtW:
			// Both sides already carry a node at exactly w: the two are
			// one component at this level, so fuse them instead of
			// stacking a third node between.
			winner, loser := pa, pb
			if pb < pa {
				winner, loser = pb, pa
			}
			nextWinner, nextLoser := a.liveHead(a.parent[winner]), a.liveHead(a.parent[loser])
			a.fuseInto(loser, winner)
			top := a.zipChains(winner, nextWinner, nextLoser, true)

			return b.uf.MergeSet(ha, hb, top)
		case aAtW:
			a.parent[nb] = pa
			top := a.zipChains(pa, a.liveHead(a.parent[pa]), pb, true)

			return b.uf.MergeSet(ha, hb, top)
		case bAtW:
			a.parent[na] = pb
			top := a.zipChains(pb, a.liveHead(a.parent[pb]), pa, true)

			return b.uf.MergeSet(ha, hb, top)
		}
	}

	n := uint32(a.nodeCount)
	a.nodeCount++
	ci := n - uint32(a.leafCount)
	a.compLevel[ci] = w
	a.mergeRedirect[ci] = n
	a.parent[na] = n
	a.parent[nb] = n

	top := a.zipChains(n, pa, pb, !b.noFuse)

	return b.uf.MergeSet(ha, hb, top)
}

// MergeRoots is PathZip's entry point for the common connector case:
// when the leaves' current union-find tops are themselves still bare
// forest roots, belowWeight's climb and zipChains' reconciliation both
// collapse to a single direct link-or-fuse at the top, with nothing
// further to zip above it. PathZip's general algorithm already covers
// this case correctly; MergeRoots names it separately so merge-driver
// code can say which of the two situations it expects.
func (b *Builder) MergeRoots(i, j int, w float64) int {
	return b.PathZip(i, j, w)
}
