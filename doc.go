// Package alphatree builds hierarchical connected-component trees over
// weighted planar image graphs.
//
//	🌳 What is alphatree?
//
//	A focused, thread-safe-by-construction library for morphological
//	hierarchical segmentation:
//
//	  • uf/        — generic union-find, rank-separate and rank-packed
//	  • pixgraph/  — pixel-grid edge extraction (4/6±/8-connectivity) and sort
//	  • alphatree/ — the flat-arena alpha-tree builder and altitude-tree variant
//	  • partition/ — recursive divide-and-conquer parallel builder
//	  • imgtree/   — façade tying the above into BuildAlpha/BuildAltitude
//
//	✨ Why alphatree?
//
//	  - Arena-packed    — one flat index space for leaves and components,
//	                      no pointer-chasing node objects
//	  - Weight-monotone — built by a single ascending sweep over sorted edges
//	  - Parallel        — tile, build, and merge via path-zipping without
//	                      re-sorting already-placed leaves
//
// Most callers only need imgtree:
//
//	tree, err := imgtree.BuildAlpha(width, height, pixgraph.Conn4, weight, imgtree.DefaultOptions())
//
// See each subpackage's doc comment for the data model and algorithm it
// implements.
package alphatree
