package alphatree_test

import (
	"testing"

	"github.com/katalvlaran/alphatree/alphatree"
	"github.com/katalvlaran/alphatree/pixgraph"
	"github.com/stretchr/testify/assert"
)

// TestTree_EmptyArenaHasNoNodes checks the zero-leaf degenerate case.
func TestTree_EmptyArenaHasNoNodes(t *testing.T) {
	b := alphatree.NewBuilder(0, true)
	b.Consume(nil)
	tree := b.Finish(true)

	assert.Equal(t, 0, tree.LeafCount())
	assert.Equal(t, 0, tree.CompCount())
	assert.Equal(t, 0, tree.RootCount())
}

// TestTree_ParentOutOfRangePanics checks the node-index contract.
func TestTree_ParentOutOfRangePanics(t *testing.T) {
	b := alphatree.NewBuilder(2, true)
	b.Consume(nil)
	tree := b.Finish(true)

	assert.Panics(t, func() { tree.Parent(99) })
	assert.Panics(t, func() { tree.Parent(-1) })
}

// TestTree_ChildrenOfWithoutBuiltListPanics checks that querying
// children before Finish(true) fails loudly rather than returning a
// misleadingly empty slice.
func TestTree_ChildrenOfWithoutBuiltListPanics(t *testing.T) {
	b := alphatree.NewBuilder(2, true)
	b.Consume(nil)
	tree := b.Finish(false)

	assert.Panics(t, func() { tree.ChildrenOf(0) })
}

// TestTree_LeafParentAfterMergeIsNotRoot checks IsRoot/IsLeaf agree
// with Parent on a simple two-leaf merge.
func TestTree_LeafParentAfterMergeIsNotRoot(t *testing.T) {
	b := alphatree.NewBuilder(2, true)
	b.Consume([]pixgraph.Edge{{A: 0, B: 1, Weight: 1.0}})
	tree := b.Finish(true)

	root := tree.Roots()[0]
	assert.False(t, tree.IsRoot(0))
	assert.False(t, tree.IsRoot(1))
	assert.True(t, tree.IsLeaf(0))
	assert.False(t, tree.IsLeaf(int(root)))
	assert.Equal(t, int(root), tree.Parent(0))
	assert.Equal(t, int(root), tree.Parent(1))
}
