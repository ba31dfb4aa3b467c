package maxflow

import (
	"context"
	"fmt"
)

// AddEdge adds a directed edge from→to with the given capacity and returns
// its edge index for later Flow lookups.
func (nw *Network) AddEdge(from, to int, capacity int64) (int, error) {
	if from < 0 || from >= len(nw.out) || to < 0 || to >= len(nw.out) {
		return -1, fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrVertexOutOfRange)
	}
	if capacity < 0 {
		return -1, fmt.Errorf("AddEdge(%d→%d, %d): %w", from, to, capacity, ErrNegativeCapacity)
	}

	idx := len(nw.arcs)
	nw.arcs = append(nw.arcs,
		arc{to: to, capacity: capacity, original: capacity},
		arc{to: from},
	)
	nw.out[from] = append(nw.out[from], idx)
	nw.out[to] = append(nw.out[to], idx+1)

	return idx / 2, nil
}

// Flow returns the flow carried by edge e (as returned by AddEdge), or 0
// for an unknown index.
func (nw *Network) Flow(e int) int64 {
	i := 2 * e
	if e < 0 || i >= len(nw.arcs) {
		return 0
	}

	return nw.arcs[i].original - nw.arcs[i].capacity
}

// Residual returns the remaining capacity of edge e, or 0 for an unknown index.
func (nw *Network) Residual(e int) int64 {
	i := 2 * e
	if e < 0 || i >= len(nw.arcs) {
		return 0
	}

	return nw.arcs[i].capacity
}

// validate checks the source/sink pair against the network.
func (nw *Network) validate(source, sink int) error {
	if source < 0 || source >= len(nw.out) {
		return ErrSourceNotFound
	}
	if sink < 0 || sink >= len(nw.out) {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSameEndpoints
	}

	return nil
}

// push moves amount units along arc i and back-fills its partner.
func (nw *Network) push(i int, amount int64) {
	nw.arcs[i].capacity -= amount
	nw.arcs[i^1].capacity += amount
}

// checkCtx reports ctx cancellation without blocking.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
