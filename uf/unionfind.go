package uf

// UnionFind is a disjoint-set arena over [0, n) with rank stored in a
// parallel array. T is the data type carried by each root (e.g. a tree
// node handle); it is read and written through Data/SetData and is
// otherwise opaque to UnionFind.
//
// Construction: New(n) allocates every element as its own singleton
// root. Mutation: only Merge and Update ever change parent/rank state.
// Ownership: the arena owns its own storage and is expected to be
// dropped once the caller's build finishes — there is no Close/teardown
// step because there is nothing but Go slices to release.
type UnionFind[T any] struct {
	parent []int32 // parent[i] < n: child; parent[i] >= n: root
	rank   []uint8
	data   []T
	n      int32
}

// New allocates a UnionFind over n singleton elements, each its own
// root, and seeds element i's data with init(i).
//
// Complexity: O(n).
func New[T any](n int, init func(i int) T) *UnionFind[T] {
	if n < 0 {
		panic(ErrInvalidSize)
	}
	u := &UnionFind[T]{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
		data:   make([]T, n),
		n:      int32(n),
	}
	for i := 0; i < n; i++ {
		u.parent[i] = u.n // root sentinel: parent == n
		if init != nil {
			u.data[i] = init(i)
		}
	}

	return u
}

// Size returns the number of elements the arena was built over.
func (u *UnionFind[T]) Size() int { return int(u.n) }

func (u *UnionFind[T]) checkIndex(i int32) {
	if i < 0 || i >= u.n {
		panic(ErrIndexRange)
	}
}

// Find walks parent pointers from i to its root, without compressing
// the path. Use FindUpdate in the hot path; Find alone is mostly useful
// for assertions and tests.
//
// Complexity: O(depth(i)), amortised O(α(n)) after compression.
func (u *UnionFind[T]) Find(i int) int {
	idx := int32(i)
	u.checkIndex(idx)
	for u.parent[idx] < u.n {
		idx = u.parent[idx]
	}

	return int(idx)
}

// Update rewrites every entry on the path from i to root h, pointing
// each directly at h (path compression, single pass). h must already be
// a root.
func (u *UnionFind[T]) Update(i, h int) {
	idx, root := int32(i), int32(h)
	u.checkIndex(idx)
	u.checkIndex(root)
	if u.parent[root] < u.n {
		contractViolation("Update target is not a root")
	}
	for u.parent[idx] < u.n {
		next := u.parent[idx]
		u.parent[idx] = root
		idx = next
	}
}

// FindUpdate combines Find and Update: it returns the root of i and
// leaves every node on the path pointing directly at it.
//
// Complexity: O(α(n)) amortised.
func (u *UnionFind[T]) FindUpdate(i int) int {
	h := u.Find(i)
	u.Update(i, h)

	return h
}

// Merge unions the two roots a and b by rank, breaking ties by
// selecting the lower index as the winner (the deterministic tie-break
// required so that two runs over the same input produce byte-identical
// arenas). It returns the surviving root's index.
//
// Merge panics if a == b or if either argument is not currently a root
// — a programmer error, not a recoverable condition.
func (u *UnionFind[T]) Merge(a, b int) int {
	ia, ib := int32(a), int32(b)
	u.checkIndex(ia)
	u.checkIndex(ib)
	if ia == ib {
		contractViolation("Merge of an element with itself")
	}
	if u.parent[ia] < u.n || u.parent[ib] < u.n {
		contractViolation("Merge of a non-root element")
	}

	ra, rb := u.rank[ia], u.rank[ib]
	var winner, loser int32
	switch {
	case ra > rb:
		winner, loser = ia, ib
	case rb > ra:
		winner, loser = ib, ia
	default: // equal rank: lower index wins, deterministically
		if ia < ib {
			winner, loser = ia, ib
		} else {
			winner, loser = ib, ia
		}
		u.rank[winner]++
	}
	u.parent[loser] = winner

	return int(winner)
}

// Data returns the payload currently associated with root h.
func (u *UnionFind[T]) Data(h int) T {
	idx := int32(h)
	u.checkIndex(idx)

	return u.data[idx]
}

// SetData overwrites the payload associated with root h. Callers
// typically call this right after Merge, to record the new handle for
// the surviving component.
func (u *UnionFind[T]) SetData(h int, v T) {
	idx := int32(h)
	u.checkIndex(idx)
	u.data[idx] = v
}

// MergeSet is sugar for the builder's common sequence: merge the two
// roots ha, hb and immediately install v as the surviving root's data.
func (u *UnionFind[T]) MergeSet(ha, hb int, v T) int {
	root := u.Merge(ha, hb)
	u.SetData(root, v)

	return root
}
