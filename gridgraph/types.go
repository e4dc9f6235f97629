package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/seamcut/flow"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// PixelSource is a grid of RGB pixels addressable by (x, y) with
// 0 ≤ x < Width() and 0 ≤ y < Height().
type PixelSource interface {
	Width() int
	Height() int
	RGB(x, y int) Color
}

// PixelSink is a writable PixelSource; RGB returns what SetRGB last stored.
type PixelSink interface {
	PixelSource
	SetRGB(x, y int, c Color)
}

// Rect is an axis-aligned rectangle with inclusive corners (X0,Y0)-(X1,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether (x,y) lies inside r, borders included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// within returns ErrSeedOutOfBounds unless r is non-inverted and inside a w×h grid.
func (r Rect) within(w, h int) error {
	if r.X0 > r.X1 || r.Y0 > r.Y1 {
		return fmt.Errorf("%w: inverted corners %v", ErrSeedOutOfBounds, r)
	}
	if r.X0 < 0 || r.Y0 < 0 || r.X1 >= w || r.Y1 >= h {
		return fmt.Errorf("%w: %v outside %dx%d", ErrSeedOutOfBounds, r, w, h)
	}

	return nil
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, E, N, S.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals after Conn4's offsets: NW, NE, SW, SE.
	Conn8
)

// Side is the compositor's verdict for one pixel.
type Side uint8

const (
	// SideNone pixels are attached to neither terminal; they take the target pixel.
	SideNone Side = iota
	// SideSource pixels keep the source image.
	SideSource
	// SideSink pixels keep the target image.
	SideSink
)

func (s Side) String() string {
	switch s {
	case SideSource:
		return "source"
	case SideSink:
		return "sink"
	default:
		return "none"
	}
}

// Labeling selects how Classify assigns sides after the flow is solved.
type Labeling int

const (
	// LabelAdjacency looks only at each pixel's own terminal edges: source
	// side if its SOURCE→pixel edge has residual capacity left, else sink
	// side if its pixel→SINK edge does, else none.
	LabelAdjacency Labeling = iota
	// LabelReachability labels every pixel reachable from SOURCE in the
	// final residual graph as source side and all others as sink side.
	LabelReachability
)

// GridOptions contains tunable parameters for graph construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// SeamGraph is the flow network of a seam search over a Width×Height grid.
// Pixel (x,y) is node y*Width+x; Source and Sink are the two extra terminal
// nodes. Graph is mutated by the solver and read by the compositor.
type SeamGraph struct {
	Width, Height int
	Source, Sink  int
	Conn          Connectivity
	Graph         *flow.ResidualGraph

	neighborOffsets [][2]int
	sourceEdge      []flow.EdgeID // SOURCE→pixel, NoEdge outside the source seed
	sinkEdge        []flow.EdgeID // pixel→SINK, NoEdge outside the sink seed
}
