package uf

// PackedUnionFind is algorithmically identical to UnionFind, but packs
// each root's rank into its own parent slot instead of a separate rank
// array: parent[i] < n means i is a child, and parent[i] >= n means i
// is a root whose rank is parent[i] - n. This trades one fewer
// allocation and slightly better cache locality (rank and parent-ness
// live in the same word) for a marginally more fiddly implementation.
// Both encodings are externally equivalent; we expose both and let the
// caller pick.
type PackedUnionFind[T any] struct {
	parent []int32 // < n: child; >= n: root, rank = parent[i] - n
	data   []T
	n      int32
}

// NewPacked allocates a PackedUnionFind over n singleton elements.
//
// Complexity: O(n).
func NewPacked[T any](n int, init func(i int) T) *PackedUnionFind[T] {
	if n < 0 {
		panic(ErrInvalidSize)
	}
	u := &PackedUnionFind[T]{
		parent: make([]int32, n),
		data:   make([]T, n),
		n:      int32(n),
	}
	for i := 0; i < n; i++ {
		u.parent[i] = u.n // rank 0, root
		if init != nil {
			u.data[i] = init(i)
		}
	}

	return u
}

// Size returns the number of elements the arena was built over.
func (u *PackedUnionFind[T]) Size() int { return int(u.n) }

func (u *PackedUnionFind[T]) checkIndex(i int32) {
	if i < 0 || i >= u.n {
		panic(ErrIndexRange)
	}
}

// Find walks parent pointers from i to its root without compression.
func (u *PackedUnionFind[T]) Find(i int) int {
	idx := int32(i)
	u.checkIndex(idx)
	for u.parent[idx] < u.n {
		idx = u.parent[idx]
	}

	return int(idx)
}

// Update rewrites every entry on the path from i to root h to point
// directly at h.
func (u *PackedUnionFind[T]) Update(i, h int) {
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

// FindUpdate combines Find and Update.
func (u *PackedUnionFind[T]) FindUpdate(i int) int {
	h := u.Find(i)
	u.Update(i, h)

	return h
}

// Merge unions roots a and b by rank packed in the parent slot, with
// the same deterministic lower-index-wins tie-break as UnionFind.
func (u *PackedUnionFind[T]) Merge(a, b int) int {
	ia, ib := int32(a), int32(b)
	u.checkIndex(ia)
	u.checkIndex(ib)
	if ia == ib {
		contractViolation("Merge of an element with itself")
	}
	pa, pb := u.parent[ia], u.parent[ib]
	if pa < u.n || pb < u.n {
		contractViolation("Merge of a non-root element")
	}

	var winner, loser int32
	switch {
	case pa > pb: // higher rank wins
		winner, loser = ia, ib
	case pb > pa:
		winner, loser = ib, ia
	default:
		if ia < ib {
			winner, loser = ia, ib
		} else {
			winner, loser = ib, ia
		}
		u.parent[winner]++ // bump packed rank
	}
	u.parent[loser] = winner

	return int(winner)
}

// Data returns the payload currently associated with root h.
func (u *PackedUnionFind[T]) Data(h int) T {
	idx := int32(h)
	u.checkIndex(idx)

	return u.data[idx]
}

// SetData overwrites the payload associated with root h.
func (u *PackedUnionFind[T]) SetData(h int, v T) {
	idx := int32(h)
	u.checkIndex(idx)
	u.data[idx] = v
}

// MergeSet merges ha, hb and installs v as the surviving root's data.
func (u *PackedUnionFind[T]) MergeSet(ha, hb int, v T) int {
	root := u.Merge(ha, hb)
	u.SetData(root, v)

	return root
}
