// Package flow implements integer maximum flow / minimum cut on dense,
// index-addressed networks by augmenting paths (Edmonds–Karp).
//
// The network is a ResidualGraph: nodes are integers in [0, N), edges live in
// an arena and are addressed by stable EdgeIDs. Every AddEdge inserts a
// forward edge and a paired reverse edge of capacity 0, so that for every pair
//
//	residual(u→v) + residual(v→u) = capacity(u→v)
//
// holds after each augmentation. CheckConservation verifies it.
//
// # Path search
//
// Two PathFinder strategies are provided:
//
//   - BFS
//
//   - Method: sequential breadth-first search, returns as soon as the sink
//     is discovered.
//
//   - Time:   O(V + E) per search.
//
//   - Guarantees the fewest-edge path required for the O(V·E²) bound.
//
//   - ConcurrentSearch
//
//   - Method: layer-by-layer frontier expansion on a fixed-size ants pool,
//     nodes claimed once by compare-and-swap.
//
//   - Time:   O(V + E) work per search, spread over SearchConfig.Workers.
//
//   - With UnlimitedDepth it returns shortest paths as BFS does. With a
//     finite MaxDepth it is a heuristic: it may report "no path" while a
//     longer one exists, and the solver marks the Result as Heuristic.
//
// # Solving
//
//	g, _ := flow.NewResidualGraph(4)
//	g.AddEdge(0, 1, 3)
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(0, 2, 2)
//	res, err := flow.EdmondsKarp(ctx, g, 0, 2)
//	// res.MaxFlow == 4
//
// After Run returns, Result.Saturated and MinCut read the final residual
// state. Saturation is never accumulated during the run: a later round may
// reroute flow through a reverse edge and un-saturate an edge.
//
// # Capacities
//
// Capacities are int64. Unbounded (MaxInt64 >> 2) stands for "infinite";
// larger capacities are rejected with ErrCapacityRange. An augmenting path
// made only of Unbounded edges is reported as ErrUnboundedFlow.
//
// # Errors
//
//	ErrTooFewNodes       - NewResidualGraph with n < 2.
//	ErrInvalidNodeIndex  - a node index outside [0, N).
//	EdgeError            - negative capacity.
//	ErrCapacityRange     - capacity above Unbounded.
//	ErrSameTerminal      - source == sink.
//	ErrUnboundedFlow     - infinite augmenting path.
//	ErrFlowOverflow      - total flow overflows int64.
//	ErrOptionViolation   - invalid Option or SearchConfig.
//	ErrPoolSubmit        - the worker pool rejected a task.
//	context.Canceled / context.DeadlineExceeded - ctx ended during a search.
package flow
