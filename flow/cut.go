package flow

// Cut is an s–t cut read from the final residual state of a solved network.
//   - Reachable[v]: v is reachable from the source over edges with positive
//     residual capacity (the source side).
//   - Edges: forward edges leaving the source side, all saturated.
type Cut struct {
	Reachable []bool
	Edges     []EdgeID

	capacity int64
}

// Capacity returns the sum of the original capacities of the cut edges.
// After a complete solve it equals the maximum flow.
func (c *Cut) Capacity() int64 { return c.capacity }

// MinCut labels the source side of g by a residual BFS from source and
// collects the forward edges that cross to the sink side.
// Call it only after the solver has finished.
// Complexity: O(V + E).
func MinCut(g *ResidualGraph, source int) (*Cut, error) {
	if err := g.checkNode(source); err != nil {
		return nil, err
	}
	reach := make([]bool, g.Order())
	reach[source] = true
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, id := range g.adj[u] {
			v := g.to[id]
			if !reach[v] && g.residual[id] > 0 {
				reach[v] = true
				queue = append(queue, v)
			}
		}
	}

	cut := &Cut{Reachable: reach}
	for id := 0; id < len(g.to); id += 2 {
		if reach[g.from[id]] && !reach[g.to[id]] && g.capacity[id] > 0 {
			cut.Edges = append(cut.Edges, EdgeID(id))
			cut.capacity += g.capacity[id]
		}
	}

	return cut, nil
}
