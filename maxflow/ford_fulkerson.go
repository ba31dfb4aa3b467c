package maxflow

import (
	"context"
	"math"
)

// FordFulkerson computes the maximum flow from source to sink by augmenting
// along any path found with an iterative DFS.
//
// Return values and errors mirror Dinic.
//
// Complexity: O(E · F) where F is the max-flow value; suitable for the
// unit-capacity networks the verify package builds.
func FordFulkerson(ctx context.Context, nw *Network, source, sink int) (maxFlow int64, residual *Network, err error) {
	if err = nw.validate(source, sink); err != nil {
		return 0, nil, err
	}
	residual = nw.clone()

	n := residual.Order()
	via := make([]int, n) // via[v] = arc index used to reach v, -1 if unreached
	stack := make([]int, 0, n)

	for {
		// 1) Check for cancellation before each search
		if err = checkCtx(ctx); err != nil {
			return maxFlow, nil, err
		}

		// 2) Iterative DFS from source
		for i := range via {
			via[i] = -1
		}
		stack = append(stack[:0], source)
		for len(stack) > 0 && via[sink] < 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, i := range residual.out[u] {
				a := residual.arcs[i]
				if a.capacity <= 0 || a.to == source || via[a.to] >= 0 {
					continue
				}
				via[a.to] = i
				if a.to == sink {
					break
				}
				stack = append(stack, a.to)
			}
		}
		if via[sink] < 0 {
			break
		}

		// 3) Bottleneck and augment
		delta := int64(math.MaxInt64)
		for v := sink; v != source; v = residual.arcs[via[v]^1].to {
			if c := residual.arcs[via[v]].capacity; c < delta {
				delta = c
			}
		}
		for v := sink; v != source; v = residual.arcs[via[v]^1].to {
			residual.push(via[v], delta)
		}
		maxFlow += delta
	}

	return maxFlow, residual, nil
}
