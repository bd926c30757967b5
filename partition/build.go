package partition

import (
	"context"

	"github.com/katalvlaran/alphatree/alphatree"
	"github.com/katalvlaran/alphatree/pixgraph"
	"golang.org/x/sync/errgroup"
)

// Build constructs a tree over rect by recursively splitting it into
// sub-rectangles, building each leaf rectangle's tree
// sequentially, and zipping sibling sub-trees back together along their
// shared border. Depth 0 (or a rectangle whose long side never clears
// cfg.SplitFloor) builds the whole rectangle with a single sequential
// alphatree.Builder — the base case Build's recursion bottoms out at.
//
// The returned Builder has not had Finish called on it; the caller
// (typically imgtree) decides whether to build the child list.
func Build(rect pixgraph.Rect, conn pixgraph.Connectivity, w pixgraph.WeightFunc, cfg Config) (*alphatree.Builder, error) {
	if rect.W <= 0 || rect.H <= 0 {
		return nil, pixgraph.ErrInvalidDimensions
	}
	if cfg.Depth < 0 {
		return nil, ErrInvalidDepth
	}
	if cfg.SplitFloor <= 0 {
		cfg.SplitFloor = defaultSplitFloor
	}

	return build(context.Background(), rect, conn, w, cfg, cfg.Depth)
}

// build is Build's recursive worker. It is unexported because the
// exported entry point owns input validation and default-filling; every
// recursive call already sees a validated, defaulted cfg.
func build(ctx context.Context, rect pixgraph.Rect, conn pixgraph.Connectivity, w pixgraph.WeightFunc, cfg Config, depth int) (*alphatree.Builder, error) {
	if depth <= 0 || longSide(rect) <= cfg.SplitFloor {
		return sequential(rect, conn, w, cfg)
	}

	axis, left, right := splitRect(rect)

	g, gctx := errgroup.WithContext(ctx)
	var rightBuilder *alphatree.Builder
	g.Go(func() error {
		b, err := build(gctx, right, conn, w, cfg, depth-1)
		rightBuilder = b

		return err
	})

	leftBuilder, leftErr := build(ctx, left, conn, w, cfg, depth-1)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if leftErr != nil {
		return nil, leftErr
	}

	mergeHalves(leftBuilder, rightBuilder, left, right, axis, conn, w)

	return leftBuilder, nil
}

// sequential builds rect's tree directly, with no further splitting —
// the recursion's base case, and the whole of a depth-0 build.
func sequential(rect pixgraph.Rect, conn pixgraph.Connectivity, w pixgraph.WeightFunc, cfg Config) (*alphatree.Builder, error) {
	edges := pixgraph.ExtractTiled(rect, cfg.TileW, cfg.TileH, conn, w)
	pixgraph.SortEdges(edges)

	builder, consume := newLeafBuilder(cfg.Mode, rect.LeafCount(), cfg.Packed)
	consume(edges)

	return builder, nil
}

// newLeafBuilder returns the alphatree.Builder for a leaf rectangle —
// the base *Builder either way, so the merge step downstream (Absorb,
// PathZip) never needs to know which mode built it — together with the
// Consume closure appropriate to cfg's mode.
func newLeafBuilder(mode Mode, leafCount int, packed bool) (*alphatree.Builder, func([]pixgraph.Edge)) {
	if mode == ModeAltitude {
		ab := alphatree.NewAltitudeBuilder(leafCount, packed)

		return ab.Builder, ab.Consume
	}

	b := alphatree.NewBuilder(leafCount, packed)

	return b, b.Consume
}
