package imgtree_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/katalvlaran/alphatree/imgtree"
	"github.com/katalvlaran/alphatree/pixgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboard(w int) pixgraph.WeightFunc {
	return func(a, b pixgraph.Point) float64 {
		va := (a.X + a.Y) % 2
		vb := (b.X + b.Y) % 2
		if va == vb {
			return 0
		}

		return 1
	}
}

func TestBuildAlpha_InvalidDimensions(t *testing.T) {
	_, err := imgtree.BuildAlpha(0, 5, pixgraph.Conn4, checkerboard(0), imgtree.DefaultOptions())
	assert.ErrorIs(t, err, pixgraph.ErrInvalidDimensions)
}

func TestBuildAlpha_Sequential(t *testing.T) {
	w, h := 8, 8
	tree, err := imgtree.BuildAlpha(w, h, pixgraph.Conn4, checkerboard(w), imgtree.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, w*h, tree.LeafCount())
	assert.Equal(t, 1, tree.RootCount())
}

func TestBuildAlpha_ParallelSameLeafAndRootCounts(t *testing.T) {
	w, h := 32, 24
	opts := imgtree.DefaultOptions()
	opts.Depth = 3
	opts.SplitFloor = 4

	tree, err := imgtree.BuildAlpha(w, h, pixgraph.Conn8, checkerboard(w), opts)
	require.NoError(t, err)

	assert.Equal(t, w*h, tree.LeafCount())
	assert.Equal(t, 1, tree.RootCount())
}

func TestBuildAltitude_ExactlyLMinus1Components(t *testing.T) {
	w, h := 6, 6
	tree, err := imgtree.BuildAltitude(w, h, pixgraph.Conn4, checkerboard(w), imgtree.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, w*h-1, tree.CompCount())
}

// TestBuildAltitude_ExactlyLMinus1Components_Parallel exercises the
// parallel (partition.Build) dispatch path with a low-cardinality
// weight function (checkerboard only ever produces 0 or 1), the
// condition most likely to hand a cross-tile connector the exact same
// weight as an existing tile-internal node - the case that must never
// collapse two altitude-tree components into one.
func TestBuildAltitude_ExactlyLMinus1Components_Parallel(t *testing.T) {
	w, h := 10, 10
	opts := imgtree.DefaultOptions()
	opts.Depth = 2
	opts.SplitFloor = 3

	tree, err := imgtree.BuildAltitude(w, h, pixgraph.Conn8, checkerboard(w), opts)
	require.NoError(t, err)

	assert.Equal(t, w*h-1, tree.CompCount())
}

func TestBuildAlpha_LogsDriverDiagnosticsWhenLoggerSet(t *testing.T) {
	var buf bytes.Buffer
	opts := imgtree.DefaultOptions()
	opts.Logger = log.New(&buf, "", 0)

	_, err := imgtree.BuildAlpha(4, 4, pixgraph.Conn4, checkerboard(4), opts)
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}

func TestBuildAlpha_NoBuildChildrenSkipsChildList(t *testing.T) {
	opts := imgtree.DefaultOptions()
	opts.BuildChildren = false

	tree, err := imgtree.BuildAlpha(4, 4, pixgraph.Conn4, checkerboard(4), opts)
	require.NoError(t, err)
	assert.Nil(t, tree.ChildOffset())
	assert.Nil(t, tree.Children())
}
