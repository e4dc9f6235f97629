package flow

import (
	"context"
	"fmt"
)

// PathFinder searches a residual graph for an augmenting path.
//
// FindPath reports whether a path s→t exists over edges with positive
// residual capacity. On success parent[t] chains back to s: for every node v
// on the path, parent[v] is the edge through which v was reached and
// parent[s] == Root. Nodes not reached hold NoEdge. Implementations must not
// modify residual capacities, and must never report a path containing an edge
// with zero residual.
type PathFinder interface {
	FindPath(ctx context.Context, g *ResidualGraph, s, t int, parent []EdgeID) (bool, error)
}

// boundedFinder is implemented by PathFinders that may report "no path"
// while a longer path still exists.
type boundedFinder interface {
	Bounded() bool
}

// PathTo rebuilds the edge sequence s→t from a predecessor slice filled by a
// successful FindPath. The result is ordered from source to sink.
// Returns nil if t was not reached.
func PathTo(g *ResidualGraph, parent []EdgeID, t int) []EdgeID {
	if t < 0 || t >= len(parent) || parent[t] == NoEdge {
		return nil
	}
	var path []EdgeID
	for v := t; parent[v] != Root; v = g.from[parent[v]] {
		path = append(path, parent[v])
	}
	// reverse to get source → sink
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// prepareSearch validates terminals and the predecessor slice, then marks
// every node unvisited except s.
func prepareSearch(g *ResidualGraph, s, t int, parent []EdgeID) error {
	if err := g.checkNode(s); err != nil {
		return err
	}
	if err := g.checkNode(t); err != nil {
		return err
	}
	if len(parent) != g.Order() {
		return fmt.Errorf("%w: got %d, want %d", ErrPredecessorLength, len(parent), g.Order())
	}
	for i := range parent {
		parent[i] = NoEdge
	}
	parent[s] = Root

	return nil
}
