package gridgraph

import "fmt"

// Regions finds every contiguous region of pixels labeled side, according to
// sg.Conn connectivity. sides must come from Classify on the same graph.
// Returns a slice of regions; each region is a slice of pixel indices
// (row-major) in BFS order from its first pixel in scan order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (sg *SeamGraph) Regions(sides []Side, side Side) ([][]int, error) {
	if sg == nil {
		return nil, ErrNilImage
	}
	total := sg.Pixels()
	if len(sides) != total {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSideLength, len(sides), total)
	}
	seen := make([]bool, total)
	var regions [][]int

	for i0 := 0; i0 < total; i0++ {
		if sides[i0] != side || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := sg.Coordinate(queue[qi])
			for _, d := range sg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !sg.InBounds(vx, vy) {
					continue
				}
				vi := sg.Index(vx, vy)
				if !seen[vi] && sides[vi] == side {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions, nil
}
