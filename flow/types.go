package flow

import "math"

// EdgeID identifies an edge inside a ResidualGraph. IDs are dense, stable for
// the lifetime of the graph, and come in pairs: a forward edge always has an
// even ID and its reverse edge is id^1.
type EdgeID int

const (
	// NoEdge marks an unvisited node in a predecessor slice.
	NoEdge EdgeID = -1

	// Root marks the search source in a predecessor slice.
	Root EdgeID = -2
)

// Unbounded is the capacity used for edges that are effectively
// unconstrained, such as terminal links of seed pixels. It is a quarter of
// the int64 range so that residual bookkeeping on a pair, which never exceeds
// the pair's original capacity, cannot overflow. Sums over several Unbounded
// edges can; OutCapacity saturates at math.MaxInt64.
const Unbounded int64 = math.MaxInt64 >> 2

// Edge is a snapshot of one directed residual edge.
//   - Capacity: original capacity, fixed at construction (0 for reverse edges).
//   - Residual: remaining capacity after the flow pushed so far.
type Edge struct {
	From, To int
	Capacity int64
	Residual int64
}

// Saturated reports whether a forward edge with positive capacity has no
// residual capacity left.
func (e Edge) Saturated() bool {
	return e.Capacity > 0 && e.Residual == 0
}

// Result is the outcome of a completed max-flow run.
//   - MaxFlow:   total flow pushed from source to sink.
//   - Rounds:    number of augmenting paths applied.
//   - Saturated: forward edges with zero residual in the final state.
//   - Heuristic: true when a depth-bounded PathFinder was used, in which case
//     MaxFlow is a lower bound on the true maximum flow.
type Result struct {
	MaxFlow   int64
	Rounds    int
	Saturated []EdgeID
	Heuristic bool
}
