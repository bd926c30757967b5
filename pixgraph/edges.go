package pixgraph

// Extract scans rect row-major and emits every edge of the
// connectivity-specific neighbour set, with both endpoints given as
// vertex ids local to rect. The returned
// slice is unsorted; call SortEdges to bring it into the non-decreasing
// weight order the alpha-tree builder requires.
//
// Complexity: O(W*H*d) where d is 2, 3 or 4 depending on conn.
func Extract(rect Rect, conn Connectivity, w WeightFunc) []Edge {
	if rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	offsets := forwardOffsets(conn)
	edges := make([]Edge, 0, EdgeCount(rect.W, rect.H, conn))

	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			p := Point{X: rect.X + x, Y: rect.Y + y}
			pid := int32(rect.LocalID(p))
			for _, d := range offsets {
				q := Point{X: p.X + d.dx, Y: p.Y + d.dy}
				if !rect.Contains(q) {
					continue
				}
				qid := int32(rect.LocalID(q))
				edges = append(edges, Edge{A: pid, B: qid, Weight: w(p, q)})
			}
		}
	}

	return edges
}

// ExtractTiled behaves exactly like Extract — same edge set, same ids,
// local to rect — but walks rect in tileW x tileH blocks rather than
// one full row at a time, for cache locality during extraction: a
// caller whose WeightFunc reads from a tile-sized working buffer (a
// decoded image block, say) sees that buffer accessed in a tight
// raster within each tile instead of striding across the whole
// rectangle once per row.
//
// A non-positive tileW/tileH, or a tile that already covers all of
// rect, falls back to Extract directly.
//
// Complexity: O(W*H*d), identical to Extract; only traversal order
// differs.
func ExtractTiled(rect Rect, tileW, tileH int, conn Connectivity, w WeightFunc) []Edge {
	if rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	if tileW <= 0 || tileH <= 0 || (tileW >= rect.W && tileH >= rect.H) {
		return Extract(rect, conn, w)
	}
	offsets := forwardOffsets(conn)
	edges := make([]Edge, 0, EdgeCount(rect.W, rect.H, conn))

	for ty := 0; ty < rect.H; ty += tileH {
		th := tileH
		if ty+th > rect.H {
			th = rect.H - ty
		}
		for tx := 0; tx < rect.W; tx += tileW {
			tw := tileW
			if tx+tw > rect.W {
				tw = rect.W - tx
			}
			for y := 0; y < th; y++ {
				for x := 0; x < tw; x++ {
					p := Point{X: rect.X + tx + x, Y: rect.Y + ty + y}
					pid := int32(rect.LocalID(p))
					for _, d := range offsets {
						q := Point{X: p.X + d.dx, Y: p.Y + d.dy}
						if !rect.Contains(q) {
							continue
						}
						qid := int32(rect.LocalID(q))
						edges = append(edges, Edge{A: pid, B: qid, Weight: w(p, q)})
					}
				}
			}
		}
	}

	return edges
}
