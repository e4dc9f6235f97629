package flow

import (
	"errors"
	"fmt"
)

// Sentinel errors for residual-graph construction and max-flow execution.
// Callers branch with errors.Is; context is attached with %w.
var (
	// ErrTooFewNodes is returned when a network is created with fewer than two nodes.
	ErrTooFewNodes = errors.New("flow: network needs at least two nodes")

	// ErrInvalidNodeIndex is returned when a node index lies outside [0, N).
	ErrInvalidNodeIndex = errors.New("flow: node index out of range")

	// ErrSameTerminal is returned when source and sink are the same node.
	ErrSameTerminal = errors.New("flow: source and sink must differ")

	// ErrCapacityRange is returned when a capacity exceeds Unbounded.
	ErrCapacityRange = errors.New("flow: capacity exceeds Unbounded")

	// ErrUnboundedFlow is returned when an augmenting path consists only of
	// Unbounded edges, so the maximum flow is not finite.
	ErrUnboundedFlow = errors.New("flow: augmenting path of unbounded capacity")

	// ErrFlowOverflow is returned when the accumulated flow would overflow int64.
	ErrFlowOverflow = errors.New("flow: total flow overflows int64")

	// ErrPredecessorLength is returned when a predecessor slice does not match
	// the order of the graph.
	ErrPredecessorLength = errors.New("flow: predecessor slice length mismatch")

	// ErrOptionViolation is returned when an invalid option or config value is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrConservation is returned by CheckConservation when an edge pair
	// no longer sums to its original capacity.
	ErrConservation = errors.New("flow: capacity conservation violated")

	// ErrPoolSubmit is returned when the worker pool rejects an expansion task.
	ErrPoolSubmit = errors.New("flow: worker pool rejected task")
)

// EdgeError is returned when an edge is added with a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}
