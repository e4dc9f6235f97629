package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/seamcut/flow"
)

// Build constructs the seam network for blending src into dst.
//
// For every pixel cur and every in-bounds neighbor nb (per opts.Conn) it adds
// the edge nb→cur with capacity EdgeWeight(dst(nb), src(cur)). Both directions
// between two neighbors are added by separate visits, each with its own
// asymmetric weight. It then adds SOURCE→pixel for each pixel in sourceSeed
// and pixel→SINK for each pixel in sinkSeed.
//
// Errors (all returned before any edge is added):
//   - ErrNilImage if src or dst is nil.
//   - ErrEmptyGrid if the grids have no pixels.
//   - ErrDimensionMismatch if src and dst differ in size.
//   - ErrSeedOutOfBounds if a seed is inverted or leaves the grid.
//   - ErrSeedOverlap if the seeds share a pixel.
//
// Complexity: O(W×H×d) time and memory, d = 4 or 8.
func Build(src, dst PixelSource, sourceSeed, sinkSeed Rect, opts GridOptions) (*SeamGraph, error) {
	if src == nil || dst == nil {
		return nil, ErrNilImage
	}
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if dst.Width() != w || dst.Height() != h {
		return nil, fmt.Errorf("%w: source %dx%d, target %dx%d", ErrDimensionMismatch, w, h, dst.Width(), dst.Height())
	}
	if err := sourceSeed.within(w, h); err != nil {
		return nil, fmt.Errorf("source seed: %w", err)
	}
	if err := sinkSeed.within(w, h); err != nil {
		return nil, fmt.Errorf("sink seed: %w", err)
	}
	if sourceSeed.Overlaps(sinkSeed) {
		return nil, fmt.Errorf("%w: %v and %v", ErrSeedOverlap, sourceSeed, sinkSeed)
	}

	n := w * h
	g, err := flow.NewResidualGraph(n + 2)
	if err != nil {
		return nil, err
	}
	sg := &SeamGraph{
		Width:           w,
		Height:          h,
		Source:          n,
		Sink:            n + 1,
		Conn:            opts.Conn,
		Graph:           g,
		neighborOffsets: offsetsFor(opts.Conn),
		sourceEdge:      make([]flow.EdgeID, n),
		sinkEdge:        make([]flow.EdgeID, n),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur := sg.Index(x, y)
			here := src.RGB(x, y)
			for _, d := range sg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !sg.InBounds(nx, ny) {
					continue
				}
				if _, err = g.AddEdge(sg.Index(nx, ny), cur, EdgeWeight(dst.RGB(nx, ny), here)); err != nil {
					return nil, err
				}
			}

			sg.sourceEdge[cur], sg.sinkEdge[cur] = flow.NoEdge, flow.NoEdge
			if sourceSeed.Contains(x, y) {
				if sg.sourceEdge[cur], err = g.AddEdge(sg.Source, cur, flow.Unbounded); err != nil {
					return nil, err
				}
			}
			if sinkSeed.Contains(x, y) {
				if sg.sinkEdge[cur], err = g.AddEdge(cur, sg.Sink, flow.Unbounded); err != nil {
					return nil, err
				}
			}
		}
	}

	return sg, nil
}

// offsetsFor precomputes neighbor offsets for the connectivity so adjacency
// traversals avoid branching.
func offsetsFor(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	}

	return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (sg *SeamGraph) InBounds(x, y int) bool {
	return x >= 0 && x < sg.Width && y >= 0 && y < sg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (sg *SeamGraph) NeighborOffsets() [][2]int {
	return sg.neighborOffsets
}

// Pixels returns the number of pixel nodes, Width×Height.
func (sg *SeamGraph) Pixels() int { return sg.Width * sg.Height }

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (sg *SeamGraph) Index(x, y int) int {
	return y*sg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (sg *SeamGraph) Coordinate(idx int) (x, y int) {
	return idx % sg.Width, idx / sg.Width
}

// SourceEdge returns the SOURCE→pixel edge of pixel idx, or flow.NoEdge if the
// pixel is outside the source seed.
func (sg *SeamGraph) SourceEdge(idx int) flow.EdgeID { return sg.sourceEdge[idx] }

// SinkEdge returns the pixel→SINK edge of pixel idx, or flow.NoEdge if the
// pixel is outside the sink seed.
func (sg *SeamGraph) SinkEdge(idx int) flow.EdgeID { return sg.sinkEdge[idx] }
