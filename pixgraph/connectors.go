package pixgraph

// Connectors extracts the edges crossing the border between two
// adjacent, disjoint rectangles produced by a single split of a larger
// rectangle along axis — used by the parallel divide-and-conquer merge
// to reconnect two independently built sub-trees. Endpoint ids in the
// returned edges are
// local to left and right respectively (A is local to left, B is local
// to right); the caller (partition.Build) is responsible for offsetting
// them into the absorbed arena's combined index space. The edges come
// back already in SortEdges' non-decreasing, deterministically
// tie-broken order.
//
// The base border crossing (the orthogonal neighbour across the cut)
// always contributes one edge per shared row (vertical split) or column
// (horizontal split): H edges across a vertical split, W across a
// horizontal one. Any diagonal directions conn also connects across
// the cut.
//
// Complexity: O(max(left.H, left.W)).
func Connectors(left, right Rect, axis SplitAxis, conn Connectivity, w WeightFunc) []Edge {
	var edges []Edge
	switch axis {
	case SplitVertical:
		edges = verticalConnectors(left, right, conn, w)
	case SplitHorizontal:
		edges = horizontalConnectors(left, right, conn, w)
	default:
		panic(ErrUnknownConnectivity)
	}
	SortEdges(edges)

	return edges
}

func verticalConnectors(left, right Rect, conn Connectivity, w WeightFunc) []Edge {
	if left.Y != right.Y || left.H != right.H || right.X != left.X+left.W {
		panic(ErrMismatchedRects)
	}
	hasPlus := conn == Conn6Plus || conn == Conn8
	hasMinus := conn == Conn6Minus || conn == Conn8

	edges := make([]Edge, 0, left.H*3)
	lastLeftCol := left.X + left.W - 1
	firstRightCol := right.X

	for y := 0; y < left.H; y++ {
		py := left.Y + y
		pl := Point{X: lastLeftCol, Y: py}
		pr := Point{X: firstRightCol, Y: py}
		edges = append(edges, Edge{
			A: int32(left.LocalID(pl)), B: int32(right.LocalID(pr)),
			Weight: w(pl, pr),
		})
		if hasPlus && y+1 < left.H {
			// down-right from left's last column to right's first column.
			qr := Point{X: firstRightCol, Y: py + 1}
			edges = append(edges, Edge{
				A: int32(left.LocalID(pl)), B: int32(right.LocalID(qr)),
				Weight: w(pl, qr),
			})
		}
		if hasMinus && y+1 < left.H {
			// down-left from right's first column to left's last column.
			ql := Point{X: lastLeftCol, Y: py + 1}
			edges = append(edges, Edge{
				A: int32(left.LocalID(ql)), B: int32(right.LocalID(pr)),
				Weight: w(pr, ql),
			})
		}
	}

	return edges
}

func horizontalConnectors(left, right Rect, conn Connectivity, w WeightFunc) []Edge {
	// "left" is the top tile and "right" is the bottom tile by
	// convention when axis == SplitHorizontal; names kept symmetric with
	// verticalConnectors for readability.
	top, bottom := left, right
	if top.X != bottom.X || top.W != bottom.W || bottom.Y != top.Y+top.H {
		panic(ErrMismatchedRects)
	}
	hasPlus := conn == Conn6Plus || conn == Conn8
	hasMinus := conn == Conn6Minus || conn == Conn8

	edges := make([]Edge, 0, top.W*3)
	lastTopRow := top.Y + top.H - 1
	firstBottomRow := bottom.Y

	for x := 0; x < top.W; x++ {
		px := top.X + x
		pt := Point{X: px, Y: lastTopRow}
		pb := Point{X: px, Y: firstBottomRow}
		edges = append(edges, Edge{
			A: int32(top.LocalID(pt)), B: int32(bottom.LocalID(pb)),
			Weight: w(pt, pb),
		})
		if hasPlus && x+1 < top.W {
			qb := Point{X: px + 1, Y: firstBottomRow}
			edges = append(edges, Edge{
				A: int32(top.LocalID(pt)), B: int32(bottom.LocalID(qb)),
				Weight: w(pt, qb),
			})
		}
		if hasMinus && x+1 < top.W {
			// down-left: the top-row pixel at px+1 is the scan-forward
			// origin, same argument order Extract would use.
			qt := Point{X: px + 1, Y: lastTopRow}
			edges = append(edges, Edge{
				A: int32(top.LocalID(qt)), B: int32(bottom.LocalID(pb)),
				Weight: w(qt, pb),
			})
		}
	}

	return edges
}
