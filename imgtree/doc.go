// Package imgtree is the top-level façade: BuildAlpha and
// BuildAltitude take an image's (width, height), a connectivity, and a
// pixgraph.WeightFunc, and dispatch to either a single sequential
// github.com/katalvlaran/alphatree/alphatree.Builder (Options.Depth ==
// 0) or github.com/katalvlaran/alphatree/partition's parallel
// divide-and-conquer builder (Options.Depth > 0), returning a finished,
// read-only *alphatree.Tree either way.
//
// Note on leaf ordering: at Depth == 0, leaf index i is exactly
// id(p) = p.Y*width + p.X, since pixgraph.Extract and
// alphatree.NewBuilder never permute vertex ids. At Depth > 0, leaf
// ordering differs — each recursive split builds its own
// sub-rectangle's leaves in tile-local order, and Builder.Absorb
// concatenates rather than re-sorts them — so a parallel tree's level
// sets are guaranteed identical to the sequential one, but leaf index i
// no longer names a fixed pixel without also knowing the split
// recursion that produced it. Callers that must map a specific pixel to
// a leaf index after a parallel build should build at Depth == 0, or
// keep their own (width, height, split config) to replay the mapping.
package imgtree
