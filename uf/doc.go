// Package uf implements a disjoint-set (union-find) arena over a dense
// index space [0, N), with path compression and union by rank. It is the
// union-find arena described for the alpha-tree and altitude-tree
// builders: each root additionally carries a piece of caller-supplied
// data (the current tree-node handle for that root's component), so a
// builder can go from "these two leaves are connected" straight to
// "these are the two component handles to merge" without a second
// lookup structure.
//
// Two encodings are provided, both satisfying the same algorithmic
// contract and differing only in how the rank of a root is stored:
//
//   - UnionFind keeps rank in a parallel []uint8 slice.
//   - PackedUnionFind packs the rank into the root's own parent slot
//     (values >= n mark a root, and rank = parent[i] - n).
//
// Neither allocates after New; Merge, Find and Update never grow the
// underlying arrays.
//
// Complexity: a sequence of m operations over n elements costs
// O(m * α(n)) amortized, where α is the inverse Ackermann function.
package uf
