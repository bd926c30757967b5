package alphatree_test

import (
	"testing"

	"github.com/katalvlaran/alphatree/alphatree"
	"github.com/katalvlaran/alphatree/pixgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildChildren_CSRCoversEveryNodeExactlyOnce checks the core CSR
// invariant: every node except the true roots appears in exactly one
// child bucket, and the pseudo-root bucket holds exactly the roots.
func TestBuildChildren_CSRCoversEveryNodeExactlyOnce(t *testing.T) {
	b := alphatree.NewBuilder(6, true)
	b.Consume([]pixgraph.Edge{
		{A: 0, B: 1, Weight: 1},
		{A: 2, B: 3, Weight: 1},
		{A: 1, B: 2, Weight: 2},
		{A: 4, B: 5, Weight: 3},
	})
	tree := b.Finish(true)

	offset := tree.ChildOffset()
	children := tree.Children()
	require.Equal(t, tree.CompCount()+2, len(offset))
	require.Equal(t, tree.NodeCount(), len(children))

	seen := make(map[uint32]bool, tree.NodeCount())
	for ci := 0; ci <= tree.CompCount(); ci++ {
		for _, c := range children[offset[ci]:offset[ci+1]] {
			assert.False(t, seen[c], "node %d listed twice", c)
			seen[c] = true
		}
	}
	assert.Len(t, seen, tree.NodeCount())

	roots := tree.Roots()
	for _, r := range roots {
		assert.True(t, tree.IsRoot(int(r)))
	}
}

// TestBuildChildren_MultipleRootsBucketedTogether checks that a
// disconnected graph's forest roots all land in the pseudo-root bucket.
func TestBuildChildren_MultipleRootsBucketedTogether(t *testing.T) {
	b := alphatree.NewBuilder(4, true)
	b.Consume([]pixgraph.Edge{
		{A: 0, B: 1, Weight: 1},
		{A: 2, B: 3, Weight: 1},
	})
	tree := b.Finish(true)

	roots := tree.Roots()
	assert.Len(t, roots, 2)
}
