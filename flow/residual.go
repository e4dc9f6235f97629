package flow

import (
	"fmt"
	"math"
)

// ResidualGraph is a flow network over dense node indices [0, N) stored as an
// edge arena plus an adjacency list of edge IDs.
//
// Every AddEdge call appends a forward edge and its reverse edge (capacity 0)
// as an adjacent pair, so the partner of any edge is found in O(1) by id^1.
// Edges are never removed or reordered; only residual capacities change.
//
// ResidualGraph is not safe for concurrent mutation. Searches may read it
// concurrently as long as no augmentation is in progress.
type ResidualGraph struct {
	from     []int
	to       []int
	capacity []int64
	residual []int64
	adj      [][]EdgeID
}

// NewResidualGraph creates an empty network with n nodes.
// Returns ErrTooFewNodes when n < 2.
func NewResidualGraph(n int) (*ResidualGraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}

	return &ResidualGraph{adj: make([][]EdgeID, n)}, nil
}

// Order returns the number of nodes.
func (g *ResidualGraph) Order() int { return len(g.adj) }

// EdgeCount returns the number of edges, reverse edges included.
func (g *ResidualGraph) EdgeCount() int { return len(g.to) }

// AddEdge appends the edge from→to with the given capacity together with its
// reverse edge to→from of capacity 0, and returns the forward edge's ID.
// Parallel edges between the same pair are tracked independently.
//
// Errors:
//   - ErrInvalidNodeIndex if from or to lies outside [0, N).
//   - EdgeError if capacity is negative.
//   - ErrCapacityRange if capacity exceeds Unbounded.
//
// Complexity: amortized O(1).
func (g *ResidualGraph) AddEdge(from, to int, capacity int64) (EdgeID, error) {
	if err := g.checkNode(from); err != nil {
		return NoEdge, err
	}
	if err := g.checkNode(to); err != nil {
		return NoEdge, err
	}
	if capacity < 0 {
		return NoEdge, EdgeError{From: from, To: to, Cap: capacity}
	}
	if capacity > Unbounded {
		return NoEdge, fmt.Errorf("%w: edge %d→%d capacity %d", ErrCapacityRange, from, to, capacity)
	}

	id := EdgeID(len(g.to))
	g.from = append(g.from, from, to)
	g.to = append(g.to, to, from)
	g.capacity = append(g.capacity, capacity, 0)
	g.residual = append(g.residual, capacity, 0)
	g.adj[from] = append(g.adj[from], id)
	g.adj[to] = append(g.adj[to], id^1)

	return id, nil
}

// OutEdges returns the IDs of edges leaving u, reverse edges included.
// The returned slice is owned by the graph and must not be modified.
func (g *ResidualGraph) OutEdges(u int) ([]EdgeID, error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}

	return g.adj[u], nil
}

// Edge returns a snapshot of edge id. It panics if id is not a valid edge ID,
// in the same way an out-of-range slice index does.
func (g *ResidualGraph) Edge(id EdgeID) Edge {
	return Edge{
		From:     g.from[id],
		To:       g.to[id],
		Capacity: g.capacity[id],
		Residual: g.residual[id],
	}
}

// Residual returns the residual capacity of edge id.
func (g *ResidualGraph) Residual(id EdgeID) int64 { return g.residual[id] }

// Capacity returns the original capacity of edge id.
func (g *ResidualGraph) Capacity(id EdgeID) int64 { return g.capacity[id] }

// Pair returns the partner of edge id (the reverse of a forward edge and
// vice versa).
func Pair(id EdgeID) EdgeID { return id ^ 1 }

// IsForward reports whether id was returned by AddEdge rather than created as
// a reverse edge.
func IsForward(id EdgeID) bool { return id&1 == 0 }

// Reset restores every residual capacity to its original capacity, undoing
// all augmentations.
// Complexity: O(E).
func (g *ResidualGraph) Reset() {
	copy(g.residual, g.capacity)
}

// SaturatedEdges returns the forward edges whose residual capacity is zero
// while their original capacity is positive, in ID order. Read it only after
// a solver has finished: a later augmentation may route flow back through the
// reverse edge and un-saturate an edge.
// Complexity: O(E).
func (g *ResidualGraph) SaturatedEdges() []EdgeID {
	var out []EdgeID
	for id := 0; id < len(g.to); id += 2 {
		if g.capacity[id] > 0 && g.residual[id] == 0 {
			out = append(out, EdgeID(id))
		}
	}

	return out
}

// OutCapacity returns the sum of original capacities of forward edges leaving
// u, saturated at math.MaxInt64. A terminal with four or more Unbounded edges
// reports math.MaxInt64.
func (g *ResidualGraph) OutCapacity(u int) (int64, error) {
	if err := g.checkNode(u); err != nil {
		return 0, err
	}
	var sum int64
	for _, id := range g.adj[u] {
		if !IsForward(id) {
			continue
		}
		c := g.capacity[id]
		if sum > math.MaxInt64-c {
			return math.MaxInt64, nil
		}
		sum += c
	}

	return sum, nil
}

// CheckConservation verifies, for every forward/reverse pair, that both
// residuals are non-negative and that they sum to the forward edge's original
// capacity. It returns ErrConservation wrapped with the first offending pair.
// Complexity: O(E).
func (g *ResidualGraph) CheckConservation() error {
	for id := 0; id < len(g.to); id += 2 {
		fwd, rev := g.residual[id], g.residual[id+1]
		if fwd < 0 || rev < 0 || fwd+rev != g.capacity[id] {
			return fmt.Errorf("%w: edge %d (%d→%d) residual %d + reverse %d != capacity %d",
				ErrConservation, id, g.from[id], g.to[id], fwd, rev, g.capacity[id])
		}
	}

	return nil
}

// push moves amount units of flow along edge id. Callers guarantee
// 0 < amount ≤ residual(id).
func (g *ResidualGraph) push(id EdgeID, amount int64) {
	g.residual[id] -= amount
	g.residual[id^1] += amount
}

func (g *ResidualGraph) checkNode(u int) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidNodeIndex, u, len(g.adj))
	}

	return nil
}
