// Package gridgraph turns two equally sized RGB grids into the flow network of
// a graph-cut seam, and composites the blend once the network is solved.
//
// What:
//
//   - Build wires one node per pixel plus SOURCE and SINK terminals. Each
//     in-bounds neighbor nb of pixel cur gets the edge nb→cur with capacity
//     EdgeWeight(dst(nb), src(cur)); seed rectangles tie pixels to the
//     terminals with flow.Unbounded capacity.
//   - Classify reads the solved residual graph and labels each pixel
//     SideSource, SideSink or SideNone (LabelAdjacency or LabelReachability).
//   - Composite writes src for source-side pixels and dst elsewhere.
//   - Regions groups same-side pixels into connected components.
//   - Grid, Canvas and FromImage adapt in-memory rows and image.Image values
//     to PixelSource / PixelSink.
//
// Why:
//
//   - Texture synthesis: stitch a patch into a texture along the seam
//     of least visible color change.
//   - Image blending: choose per pixel between two aligned photographs.
//
// Complexity:
//
//   - Build:     O(W×H×d) time and memory (d = 4 or 8 neighbors).
//   - Classify:  O(W×H) for LabelAdjacency; O(V+E) for LabelReachability.
//   - Composite: O(W×H) plus Classify.
//   - Regions:   O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrNilImage: a nil image or seam graph.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: source, target and output differ in size.
//   - ErrSeedOutOfBounds: a seed rectangle is inverted or leaves the grid.
//   - ErrSeedOverlap: the seeds share a pixel.
package gridgraph
