package uf

// Arena is the common contract both UnionFind and PackedUnionFind
// satisfy. Builders that don't care which rank encoding is in use (the
// alpha-tree builder and the parallel merge both fit this description)
// should depend on Arena rather than a concrete type.
type Arena[T any] interface {
	Size() int
	Find(i int) int
	Update(i, h int)
	FindUpdate(i int) int
	Merge(a, b int) int
	Data(h int) T
	SetData(h int, v T)
	MergeSet(ha, hb int, v T) int
}

var (
	_ Arena[int] = (*UnionFind[int])(nil)
	_ Arena[int] = (*PackedUnionFind[int])(nil)
)
