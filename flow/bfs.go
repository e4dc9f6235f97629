package flow

import "context"

// BFS is the sequential PathFinder. It explores the residual graph in
// breadth-first order and stops the moment the sink is discovered, so the path
// it returns has the fewest possible edges. This is the search Edmonds–Karp
// needs for its O(V·E²) bound.
//
// The predecessor slice doubles as the visited marker (NoEdge = unvisited), so
// each node is enqueued at most once.
//
// Complexity: O(V + E) time, O(V) extra memory for the queue.
type BFS struct{}

// FindPath implements PathFinder.
func (BFS) FindPath(ctx context.Context, g *ResidualGraph, s, t int, parent []EdgeID) (bool, error) {
	if err := prepareSearch(g, s, t, parent); err != nil {
		return false, err
	}
	if s == t {
		return true, nil
	}

	queue := make([]int, 0, 64)
	queue = append(queue, s)
	for head := 0; head < len(queue); head++ {
		// cancellation check (once per dequeued node)
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		u := queue[head]
		for _, id := range g.adj[u] {
			v := g.to[id]
			if parent[v] != NoEdge || g.residual[id] <= 0 {
				continue
			}
			parent[v] = id
			if v == t {
				return true, nil
			}
			queue = append(queue, v)
		}
	}

	return false, nil
}
