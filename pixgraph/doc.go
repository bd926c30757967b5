// Package pixgraph treats a rectangular region of pixels as a weighted
// planar graph: vertices are pixels, edges join neighbouring pixels
// under a chosen connectivity, and weight is whatever scalar dissimilarity
// the caller's metric produces. Image decoding, colour spaces, and
// pixel-metric selection all live outside this package; pixgraph only
// needs (width, height), a connectivity, and a weight functor.
//
// What:
//
//   - Extract enumerates the edges of a rectangle under 4-, 6±- or
//     8-connectivity, with vertex ids local to that rectangle.
//     ExtractTiled produces the identical edge set in cache-friendlier,
//     block-major traversal order.
//   - SortEdges orders edges non-decreasingly by weight, using a
//     counting sort when weights are detected to be small-range unsigned
//     integers and a comparison sort otherwise, with a fixed
//     deterministic tie-break.
//   - Connectors extracts only the edges that cross a split line between
//     two adjacent rectangles, for the parallel divide-and-conquer
//     merge step.
//
// Complexity: Extract and Connectors are O(edge count); SortEdges is
// O(E) in counting-sort mode and O(E log E) otherwise.
package pixgraph
