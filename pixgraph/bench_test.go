package pixgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/alphatree/pixgraph"
)

// BenchmarkExtractConn4 measures edge enumeration alone over a
// 1000×1000 rectangle with a trivial weight functor.
// Complexity: O(W×H×d)
func BenchmarkExtractConn4(b *testing.B) {
	const n = 1000
	rect := pixgraph.Rect{W: n, H: n}
	w := func(a, q pixgraph.Point) float64 { return float64(a.X ^ q.Y) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pixgraph.Extract(rect, pixgraph.Conn4, w)
	}
}

// BenchmarkSortEdgesCounting measures the counting-sort fast path on
// byte-range integer weights, the common case for 8-bit images.
// Complexity: O(E)
func BenchmarkSortEdgesCounting(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	base := make([]pixgraph.Edge, 1_000_000)
	for i := range base {
		base[i] = pixgraph.Edge{
			A: int32(rng.Intn(1 << 20)), B: int32(rng.Intn(1 << 20)),
			Weight: float64(rng.Intn(256)),
		}
	}
	edges := make([]pixgraph.Edge, len(base))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(edges, base)
		pixgraph.SortEdges(edges)
	}
}

// BenchmarkSortEdgesComparison measures the comparison fallback on
// fractional weights the counting path rejects.
// Complexity: O(E log E)
func BenchmarkSortEdgesComparison(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	base := make([]pixgraph.Edge, 1_000_000)
	for i := range base {
		base[i] = pixgraph.Edge{
			A: int32(rng.Intn(1 << 20)), B: int32(rng.Intn(1 << 20)),
			Weight: rng.Float64(),
		}
	}
	edges := make([]pixgraph.Edge, len(base))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(edges, base)
		pixgraph.SortEdges(edges)
	}
}
