// Package partition implements the parallel divide-and-conquer
// extension: split a rectangle along its longer side, build the
// sequential alpha-tree (or altitude-tree) over each half — in parallel,
// one half on the caller's own goroutine and the other on a worker
// joined with golang.org/x/sync/errgroup — then zip the two halves back
// together along the cut using the border connector edges pixgraph
// extracts for it.
//
// Build is the entry point. It recurses until either the configured
// split depth is exhausted or a rectangle's longer side no longer
// clears Config.SplitFloor, at which point it falls back to a single
// alphatree.Builder over the whole remaining rectangle — depth 0 being
// a pure sequential build falls out of that base case naturally rather
// than needing a separate code path.
//
// Each recursive branch owns its own alphatree.Builder (arena + union-
// find) exclusively; the only handoff between branches is the single
// Builder.Absorb call the parent makes once both children return — no
// locks in the hot path, one single-owner transfer at the join point.
package partition
