package imgtree

import (
	"github.com/katalvlaran/alphatree/alphatree"
	"github.com/katalvlaran/alphatree/partition"
	"github.com/katalvlaran/alphatree/pixgraph"
)

// BuildAlpha builds the fusing, layer-aware alpha-tree over a width x
// height image — sequential when opts.Depth is 0, the parallel
// divide-and-conquer of partition.Build otherwise.
func BuildAlpha(width, height int, conn pixgraph.Connectivity, weight pixgraph.WeightFunc, opts Options) (*alphatree.Tree, error) {
	return build(width, height, conn, weight, opts, partition.ModeAlpha)
}

// BuildAltitude builds the strictly binary altitude-tree / binary
// partition tree over a width x height image, with the same dispatch
// rule as BuildAlpha.
func BuildAltitude(width, height int, conn pixgraph.Connectivity, weight pixgraph.WeightFunc, opts Options) (*alphatree.Tree, error) {
	return build(width, height, conn, weight, opts, partition.ModeAltitude)
}

func build(width, height int, conn pixgraph.Connectivity, weight pixgraph.WeightFunc, opts Options, mode partition.Mode) (*alphatree.Tree, error) {
	if width <= 0 || height <= 0 {
		return nil, pixgraph.ErrInvalidDimensions
	}
	rect := pixgraph.Rect{X: 0, Y: 0, W: width, H: height}

	if opts.Depth <= 0 {
		opts.logf("imgtree: sequential build %dx%d leaves=%d mode=%v", width, height, rect.LeafCount(), mode)

		edges := pixgraph.ExtractTiled(rect, opts.TileW, opts.TileH, conn, weight)
		pixgraph.SortEdges(edges)

		var builder *alphatree.Builder
		if mode == partition.ModeAltitude {
			ab := alphatree.NewAltitudeBuilder(rect.LeafCount(), opts.Packed)
			ab.Consume(edges)
			builder = ab.Builder
		} else {
			builder = alphatree.NewBuilder(rect.LeafCount(), opts.Packed)
			builder.Consume(edges)
		}

		return builder.Finish(opts.BuildChildren), nil
	}

	opts.logf("imgtree: parallel build %dx%d depth=%d splitFloor=%d mode=%v", width, height, opts.Depth, opts.splitFloor(), mode)

	cfg := partition.Config{
		Depth:      opts.Depth,
		TileW:      opts.TileW,
		TileH:      opts.TileH,
		SplitFloor: opts.splitFloor(),
		Packed:     opts.Packed,
		Mode:       mode,
	}
	builder, err := partition.Build(rect, conn, weight, cfg)
	if err != nil {
		return nil, err
	}

	return builder.Finish(opts.BuildChildren), nil
}
