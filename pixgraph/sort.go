package pixgraph

import "sort"

// maxCountingSortRange is the largest weight span SortEdges will accept
// for its counting-sort fast path: 8- and 16-bit unsigned integer
// weights qualify, anything wider falls back to comparison sort.
const maxCountingSortRange = 1 << 16

// SortEdges orders edges non-decreasingly by Weight. Ties are broken
// deterministically by (min(A,B), max(A,B)) ascending, so that two
// extractions of the same rectangle always produce byte-identical
// order regardless of the underlying sort's stability guarantees.
//
// When every weight is a non-negative integer spanning less than
// maxCountingSortRange, SortEdges uses a counting sort in O(E) time and
// O(E) auxiliary space. Otherwise it falls back to a comparison sort in
// O(E log E).
func SortEdges(edges []Edge) {
	if len(edges) < 2 {
		return
	}
	if lo, hi, ok := integralRange(edges); ok && hi-lo < maxCountingSortRange {
		countingSort(edges, lo, hi)
		return
	}
	sort.Slice(edges, func(i, j int) bool { return less(edges[i], edges[j]) })
}

// less implements the fixed tie-break: primary key is Weight, secondary
// key is (min(A,B), max(A,B)) ascending.
func less(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	aMin, aMax := minMax(a.A, a.B)
	bMin, bMax := minMax(b.A, b.B)
	if aMin != bMin {
		return aMin < bMin
	}

	return aMax < bMax
}

func minMax(a, b int32) (int32, int32) {
	if a <= b {
		return a, b
	}

	return b, a
}

// integralRange reports whether every edge weight is a non-negative
// integer, and if so returns the inclusive [lo, hi] range observed.
func integralRange(edges []Edge) (lo, hi int64, ok bool) {
	lo = int64(edges[0].Weight)
	hi = lo
	for _, e := range edges {
		if e.Weight < 0 || e.Weight != float64(int64(e.Weight)) {
			return 0, 0, false
		}
		v := int64(e.Weight)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, true
}

// countingSort sorts edges in place (via a temporary buffer) by integer
// weight in [lo, hi], breaking ties with the same deterministic rule as
// the comparison path: after the distribution pass, each weight bucket
// is put in (min,max) order by a comparison sort over that bucket alone.
func countingSort(edges []Edge, lo, hi int64) {
	span := hi - lo + 1
	counts := make([]int, span+1)
	key := func(e Edge) int64 { return int64(e.Weight) - lo }

	for _, e := range edges {
		counts[key(e)+1]++
	}
	for i := int64(1); i < int64(len(counts)); i++ {
		counts[i] += counts[i-1]
	}

	buf := make([]Edge, len(edges))
	// Stable distribution pass: ties within a weight bucket keep their
	// relative order here, then get re-ordered by the tie-break sort
	// restricted to each bucket below.
	cursor := append([]int(nil), counts...)
	for _, e := range edges {
		k := key(e)
		buf[cursor[k]] = e
		cursor[k]++
	}

	// Break ties within each weight bucket deterministically; buckets
	// are small relative to E in the intended use (bounded-range pixel
	// weights), so this extra pass stays within the O(E) budget.
	for w := int64(0); w < span; w++ {
		bucket := buf[counts[w]:counts[w+1]]
		if len(bucket) > 1 {
			sort.Slice(bucket, func(i, j int) bool { return less(bucket[i], bucket[j]) })
		}
	}
	copy(edges, buf)
}
