package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/seamcut/flow"
)

// Classify labels every pixel of a solved seam graph.
//
// LabelAdjacency inspects only the pixel's own terminal edges. LabelReachability
// runs flow.MinCut from Source over the final residual graph; it never yields
// SideNone.
//
// Classify only reads sg.Graph; call it after the solver has returned.
// Complexity: O(W×H) for LabelAdjacency, O(V+E) for LabelReachability.
func (sg *SeamGraph) Classify(labeling Labeling) ([]Side, error) {
	if sg == nil || sg.Graph == nil {
		return nil, ErrNilImage
	}
	sides := make([]Side, sg.Pixels())

	switch labeling {
	case LabelAdjacency:
		for idx := range sides {
			sides[idx] = sg.adjacentSide(idx)
		}
	case LabelReachability:
		cut, err := flow.MinCut(sg.Graph, sg.Source)
		if err != nil {
			return nil, err
		}
		for idx := range sides {
			if cut.Reachable[idx] {
				sides[idx] = SideSource
			} else {
				sides[idx] = SideSink
			}
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabeling, labeling)
	}

	return sides, nil
}

func (sg *SeamGraph) adjacentSide(idx int) Side {
	if id := sg.sourceEdge[idx]; id != flow.NoEdge && sg.Graph.Residual(id) > 0 {
		return SideSource
	}
	if id := sg.sinkEdge[idx]; id != flow.NoEdge && sg.Graph.Residual(id) > 0 {
		return SideSink
	}

	return SideNone
}

// Composite writes the blended image into out: src(x,y) for source-side
// pixels, dst(x,y) for sink-side and unlabeled ones. It returns the sides it
// used so callers can inspect the seam.
//
// Nothing is written unless every argument is valid and Classify succeeds.
//
// Errors:
//   - ErrNilImage if sg, src, dst or out is nil.
//   - ErrDimensionMismatch if any image differs from the seam graph in size.
//   - ErrUnknownLabeling, or errors from flow.MinCut.
func Composite(sg *SeamGraph, src, dst PixelSource, out PixelSink, labeling Labeling) ([]Side, error) {
	if sg == nil || src == nil || dst == nil || out == nil {
		return nil, ErrNilImage
	}
	for _, img := range []PixelSource{src, dst, out} {
		if img.Width() != sg.Width || img.Height() != sg.Height {
			return nil, fmt.Errorf("%w: want %dx%d, got %dx%d",
				ErrDimensionMismatch, sg.Width, sg.Height, img.Width(), img.Height())
		}
	}

	sides, err := sg.Classify(labeling)
	if err != nil {
		return nil, err
	}
	for idx, side := range sides {
		x, y := sg.Coordinate(idx)
		if side == SideSource {
			out.SetRGB(x, y, src.RGB(x, y))
		} else {
			out.SetRGB(x, y, dst.RGB(x, y))
		}
	}

	return sides, nil
}

// CountSides returns how many pixels fall on each side, indexed by Side.
func CountSides(sides []Side) [3]int {
	var counts [3]int
	for _, s := range sides {
		counts[s]++
	}

	return counts
}
