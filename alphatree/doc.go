// Package alphatree builds the hierarchical connected-component tree
// known as the alpha-tree (and its strictly-binary specialisation, the
// altitude-tree / binary partition tree) over a sorted edge stream.
//
// The tree lives in a single contiguous Arena: indices [0, leafCount)
// are leaves (one per input vertex — typically a pixel), indices
// [leafCount, nodeCap) are components (internal nodes created as the
// weight threshold is raised). A Builder owns an Arena plus a
// github.com/katalvlaran/alphatree/uf union-find over leaf indices,
// whose data slot for each root is the current tree-node handle for
// that root's component — so the main loop never needs a second lookup
// from "these two leaves are connected" to "these are the two
// components to fuse".
//
// Construction happens in two phases: Consume runs the weight-monotone
// sweep, lifting singletons into new components and marking same-layer
// siblings for later fusion; Finish then resolves those fusions,
// compacts the arena, and optionally builds the flat child list. The
// result is a read-only Tree.
//
// Complexity: Consume is O(E * α(L)); Finish is O(L + comp_count).
package alphatree
