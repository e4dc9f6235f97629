package flow

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

const (
	// DefaultWorkers is the pool size used by DefaultSearchConfig.
	DefaultWorkers = 10

	// UnlimitedDepth disables the depth bound of ConcurrentSearch.
	UnlimitedDepth = math.MaxInt

	// minChunk is the smallest slice of a wave handed to one pool task.
	minChunk = 32
)

// SearchConfig configures ConcurrentSearch.
//   - Workers:  size of the fixed goroutine pool (≥ 1).
//   - MaxDepth: deepest BFS layer that is expanded (≥ 0). Nodes at depth
//     0..MaxDepth are expanded, so paths of at most MaxDepth+1 edges are
//     found. Use UnlimitedDepth for an exhaustive search.
type SearchConfig struct {
	Workers  int
	MaxDepth int
}

// DefaultSearchConfig returns DefaultWorkers workers and UnlimitedDepth.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{Workers: DefaultWorkers, MaxDepth: UnlimitedDepth}
}

// Validate returns ErrOptionViolation for a non-positive worker count or a
// negative depth.
func (c SearchConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, c.Workers)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, c.MaxDepth)
	}

	return nil
}

// ConcurrentSearch is a PathFinder that expands the BFS frontier in parallel
// on a fixed-size ants pool.
//
// The frontier is processed one layer ("wave") at a time. Each wave is split
// into chunks, every chunk runs as one pool task, and the search waits for
// the whole wave before deciding whether the sink was found. A node is claimed
// by compare-and-swap from NoEdge to the ID of the edge that reached it, so
// exactly one task wins each node and only the winner enqueues it.
//
// Because waves are strict layers the path found is a shortest one. When
// MaxDepth is finite the search gives up at that layer and reports "no path"
// even if a longer path exists; Bounded reports this.
//
// FindPath calls on the same ConcurrentSearch are serialized. Close releases
// the pool.
type ConcurrentSearch struct {
	cfg  SearchConfig
	pool *ants.Pool

	mu     sync.Mutex
	claims []atomic.Int64
}

// NewConcurrentSearch validates cfg and starts a pool of cfg.Workers goroutines.
func NewConcurrentSearch(cfg SearchConfig) (*ConcurrentSearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool, err := ants.NewPool(cfg.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("flow: creating worker pool: %w", err)
	}

	return &ConcurrentSearch{cfg: cfg, pool: pool}, nil
}

// Config returns the configuration the search was created with.
func (cs *ConcurrentSearch) Config() SearchConfig { return cs.cfg }

// Bounded reports whether the depth limit can end a search early.
func (cs *ConcurrentSearch) Bounded() bool { return cs.cfg.MaxDepth < UnlimitedDepth }

// Close releases the worker pool. The search must not be used afterwards.
func (cs *ConcurrentSearch) Close() {
	cs.pool.Release()
}

// FindPath implements PathFinder.
func (cs *ConcurrentSearch) FindPath(ctx context.Context, g *ResidualGraph, s, t int, parent []EdgeID) (bool, error) {
	if err := prepareSearch(g, s, t, parent); err != nil {
		return false, err
	}
	if s == t {
		return true, nil
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	claims := cs.resetClaims(g.Order(), s)
	var found atomic.Bool
	frontier := []int{s}

	for depth := 0; len(frontier) > 0 && depth <= cs.cfg.MaxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		next, err := cs.expandWave(g, frontier, t, claims, &found)
		if err != nil {
			return false, err
		}
		if found.Load() {
			break
		}
		frontier = next
	}

	for v := range parent {
		parent[v] = EdgeID(claims[v].Load())
	}

	return found.Load(), nil
}

// resetClaims returns the claim slots for an n-node graph with only s claimed.
func (cs *ConcurrentSearch) resetClaims(n, s int) []atomic.Int64 {
	if cap(cs.claims) < n {
		cs.claims = make([]atomic.Int64, n)
	}
	claims := cs.claims[:n]
	for i := range claims {
		claims[i].Store(int64(NoEdge))
	}
	claims[s].Store(int64(Root))

	return claims
}

// expandWave expands every node of one layer on the pool and returns the
// nodes claimed for the next layer. It blocks until all tasks of the wave
// have finished.
func (cs *ConcurrentSearch) expandWave(
	g *ResidualGraph,
	frontier []int,
	t int,
	claims []atomic.Int64,
	found *atomic.Bool,
) ([]int, error) {
	chunks := (len(frontier) + minChunk - 1) / minChunk
	if chunks > cs.cfg.Workers {
		chunks = cs.cfg.Workers
	}
	size := (len(frontier) + chunks - 1) / chunks
	results := make([][]int, chunks)

	var wg sync.WaitGroup
	var submitErr error
	for c := 0; c < chunks; c++ {
		lo := c * size
		if lo >= len(frontier) {
			break
		}
		part := frontier[lo:min(lo+size, len(frontier))]
		slot := &results[c]

		wg.Add(1)
		err := cs.pool.Submit(func() {
			defer wg.Done()
			*slot = claimNeighbors(g, part, t, claims, found)
		})
		if err != nil {
			wg.Done()
			submitErr = fmt.Errorf("%w: %v", ErrPoolSubmit, err)
			break
		}
	}
	wg.Wait()
	if submitErr != nil {
		return nil, submitErr
	}

	var next []int
	for _, r := range results {
		next = append(next, r...)
	}

	return next, nil
}

// claimNeighbors expands the nodes of part and returns the neighbors this task
// won. It stops as soon as any task has claimed the sink.
func claimNeighbors(g *ResidualGraph, part []int, t int, claims []atomic.Int64, found *atomic.Bool) []int {
	var next []int
	for _, u := range part {
		if found.Load() {
			return next
		}
		for _, id := range g.adj[u] {
			if g.residual[id] <= 0 {
				continue
			}
			v := g.to[id]
			if claims[v].Load() != int64(NoEdge) {
				continue
			}
			if !claims[v].CompareAndSwap(int64(NoEdge), int64(id)) {
				continue // another task won v
			}
			if v == t {
				found.Store(true)
				return next
			}
			next = append(next, v)
		}
	}

	return next
}
