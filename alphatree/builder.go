package alphatree

import (
	"github.com/katalvlaran/alphatree/pixgraph"
	"github.com/katalvlaran/alphatree/uf"
)

// Builder runs the alpha-tree main loop over a single contiguous leaf
// range. It owns an Arena and a union-find whose data
// slot for each root is the current tree-node handle representing that
// root's component - so a builder never needs a second lookup from
// "these two leaves are connected" to "these are the two components to
// merge".
type Builder struct {
	arena  *Arena
	uf     uf.Arena[uint32]
	packed bool // which union-find rank encoding this builder (and Absorb's combined builder) uses
	noFuse bool // true for AltitudeBuilder: PathZip must never collapse two distinct components into one
}

// NewBuilder allocates a Builder over leafCount leaves. packed selects
// which of uf's two rank encodings to use; both are externally
// equivalent.
func NewBuilder(leafCount int, packed bool) *Builder {
	identity := func(i int) uint32 { return uint32(i) }
	var arena uf.Arena[uint32]
	if packed {
		arena = uf.NewPacked(leafCount, identity)
	} else {
		arena = uf.New(leafCount, identity)
	}

	return &Builder{arena: NewArena(leafCount), uf: arena, packed: packed}
}

// Arena exposes the builder's underlying arena, mostly so tests and the
// partition package can inspect construction-time state.
func (b *Builder) Arena() *Arena { return b.arena }

// Consume feeds a non-decreasing-weight edge stream through the
// alpha-tree main loop: advance the weight layer, find the two
// endpoints' current components, lift the older one into the layer,
// attach the other beneath it. Edges must already be
// sorted by weight (see pixgraph.SortEdges); Consume does not sort.
//
// Complexity: O(len(edges) * alpha(leafCount)).
func (b *Builder) Consume(edges []pixgraph.Edge) {
	a := b.arena
	for _, e := range edges {
		a.advanceLayer(e.Weight)

		ha := b.uf.FindUpdate(int(e.A))
		hb := b.uf.FindUpdate(int(e.B))
		if ha == hb {
			// Redundant: this edge closes a cycle within a component
			// already fused at the current level.
			continue
		}

		na := b.uf.Data(ha)
		nb := b.uf.Data(hb)
		if na < nb {
			na, nb = nb, na
		}
		na = a.lift(na)
		a.attach(na, nb)
		b.uf.MergeSet(ha, hb, na)
	}
}

// advanceLayer starts a new layer, watermarked at the arena's current
// node count, whenever the incoming weight exceeds the current layer's
// weight.
func (a *Arena) advanceLayer(w float64) {
	if !a.weightSet || w > a.currentWeight {
		a.currentWeight = w
		a.layerBegin = uint32(a.nodeCount)
		a.weightSet = true
	}
}

// lift: if na predates the current layer, allocate a
// new component at the current weight as its parent and return the new
// node; otherwise na is already a member of this layer and is returned
// unchanged.
func (a *Arena) lift(na uint32) uint32 {
	if na >= a.layerBegin {
		return na
	}
	n := uint32(a.nodeCount)
	a.nodeCount++
	ci := n - uint32(a.leafCount)
	a.parent[na] = n
	a.parent[n] = rootSentinel
	a.compLevel[ci] = a.currentWeight
	a.mergeRedirect[ci] = n // identity: not (yet) fused away

	return n
}

// attach links nb under na. If nb was itself created
// in the current layer (a sibling component rather than an old root
// being absorbed), it is marked invalid for later resolution instead of
// having its own sentinel touched - the compactor resolves it.
func (a *Arena) attach(na, nb uint32) {
	a.parent[nb] = na
	if nb >= a.layerBegin {
		a.invalidCount++
		a.mergeRedirect[nb-uint32(a.leafCount)] = na
	}
}
