package maxflow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : a copy of nw carrying the final flow (nw is not mutated)
//   - err      : ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
//     or ctx.Err() if the context is done between pushes
//
// Steps:
//  1. Validate endpoints and clone the network.
//  2. Repeat until the sink is unreachable:
//     a. BFS from source over arcs with residual capacity to build levels.
//     b. Reset current-arc pointers.
//     c. DFS pushes along level+1 arcs until the blocking flow is found.
//  3. Return the accumulated flow and the residual copy.
func Dinic(ctx context.Context, nw *Network, source, sink int) (maxFlow int64, residual *Network, err error) {
	// 1) Validate and clone
	if err = nw.validate(source, sink); err != nil {
		return 0, nil, err
	}
	residual = nw.clone()

	n := residual.Order()
	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)

	for {
		// 2) Cancellation check before each level graph
		if err = checkCtx(ctx); err != nil {
			return maxFlow, nil, err
		}

		// 2a) BFS levels
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, i := range residual.out[u] {
				a := residual.arcs[i]
				if a.capacity > 0 && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// 2b) Reset current-arc pointers
		for i := range iter {
			iter[i] = 0
		}

		// 2c) Blocking flow
		for {
			if err = checkCtx(ctx); err != nil {
				return maxFlow, nil, err
			}
			pushed := residual.dinicPush(level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
		}
	}

	return maxFlow, residual, nil
}

// dinicPush recursively pushes up to available units from u toward sink
// along the level graph and returns the amount actually sent.
func (nw *Network) dinicPush(level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.out[u]); iter[u]++ {
		i := nw.out[u][iter[u]]
		a := nw.arcs[i]
		if a.capacity <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.capacity < send {
			send = a.capacity
		}
		if pushed := nw.dinicPush(level, iter, a.to, sink, send); pushed > 0 {
			nw.push(i, pushed)
			return pushed
		}
	}

	return 0
}
