package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Solver drives repeated path search and augmentation on one ResidualGraph
// until no augmenting path remains. It is the single owner of the graph while
// Run executes: searches read residuals, augmentations write them, and the two
// never overlap.
type Solver struct {
	g            *ResidualGraph
	source, sink int
	opts         Options
	parent       []EdgeID
}

// NewSolver validates the terminals and options and prepares a Solver.
//
// Errors:
//   - ErrInvalidNodeIndex if source or sink is outside [0, N).
//   - ErrSameTerminal if source == sink.
//   - ErrOptionViolation for invalid options.
func NewSolver(g *ResidualGraph, source, sink int, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.checkNode(source); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if err := g.checkNode(sink); err != nil {
		return nil, fmt.Errorf("sink: %w", err)
	}
	if source == sink {
		return nil, ErrSameTerminal
	}

	return &Solver{
		g:      g,
		source: source,
		sink:   sink,
		opts:   o,
		parent: make([]EdgeID, g.Order()),
	}, nil
}

// Run computes the maximum flow, mutating the graph's residual capacities in
// place.
//
// Steps:
//  1. SEARCHING: ask the PathFinder for a path source→sink. None → DONE.
//  2. AUGMENTING: walk the predecessor chain from sink to source and take
//     the minimum residual as the bottleneck; push it along every edge.
//  3. Add the bottleneck to the total and go back to 1.
//
// Each round raises the total by at least 1, and the total is bounded by the
// finite capacities leaving the set of nodes reachable from the source over
// Unbounded edges, so Run terminates. A path made only of Unbounded edges
// yields ErrUnboundedFlow. Cancellation of ctx is reported as ctx.Err().
//
// Complexity: O(V·E²) with BFS.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	log := s.opts.Logger
	res := &Result{}
	if bf, ok := s.opts.Finder.(boundedFinder); ok && bf.Bounded() {
		res.Heuristic = true
	}

	for {
		found, err := s.opts.Finder.FindPath(ctx, s.g, s.source, s.sink, s.parent)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}

		path := PathTo(s.g, s.parent, s.sink)
		bottleneck := s.bottleneck(path)
		if bottleneck >= Unbounded || s.unbounded(path) {
			return nil, fmt.Errorf("%w: %d edges from %d to %d", ErrUnboundedFlow, len(path), s.source, s.sink)
		}
		if res.MaxFlow > math.MaxInt64-bottleneck {
			return nil, ErrFlowOverflow
		}
		for _, id := range path {
			s.g.push(id, bottleneck)
		}
		res.MaxFlow += bottleneck
		res.Rounds++

		if s.opts.Verbose {
			log.WithFields(logrus.Fields{
				"round": res.Rounds,
				"hops":  len(path),
				"flow":  bottleneck,
				"total": res.MaxFlow,
			}).Debug("flow: augmented path")
		}
		s.opts.OnAugment(path, bottleneck)
	}

	res.Saturated = s.g.SaturatedEdges()
	log.WithFields(logrus.Fields{
		"max_flow":  res.MaxFlow,
		"rounds":    res.Rounds,
		"saturated": len(res.Saturated),
		"heuristic": res.Heuristic,
	}).Info("flow: max flow computed")

	return res, nil
}

// Parents returns the predecessor slice of the last search. It is overwritten
// by every search.
func (s *Solver) Parents() []EdgeID { return s.parent }

// unbounded reports whether every edge of path is a forward edge of Unbounded
// capacity, however much flow earlier rounds already took from it.
func (s *Solver) unbounded(path []EdgeID) bool {
	for _, id := range path {
		if !IsForward(id) || s.g.capacity[id] != Unbounded {
			return false
		}
	}

	return len(path) > 0
}

func (s *Solver) bottleneck(path []EdgeID) int64 {
	b := Unbounded
	for _, id := range path {
		if r := s.g.residual[id]; r < b {
			b = r
		}
	}

	return b
}

// EdmondsKarp computes the maximum flow from source to sink on g in one call.
// The graph is left in its final residual state, ready for cut extraction.
// See Solver.Run for the algorithm and errors.
func EdmondsKarp(ctx context.Context, g *ResidualGraph, source, sink int, opts ...Option) (*Result, error) {
	s, err := NewSolver(g, source, sink, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(ctx)
}
