package maxflow

import (
	"context"
	"math"
)

// EdmondsKarp computes the maximum flow from source to sink by repeatedly
// augmenting along a shortest (fewest-arc) path found with BFS.
//
// Return values and errors mirror Dinic. Complexity: O(V · E²).
func EdmondsKarp(ctx context.Context, nw *Network, source, sink int) (maxFlow int64, residual *Network, err error) {
	if err = nw.validate(source, sink); err != nil {
		return 0, nil, err
	}
	residual = nw.clone()

	n := residual.Order()
	via := make([]int, n) // via[v] = arc index used to reach v, -1 if unreached
	queue := make([]int, 0, n)

	for {
		if err = checkCtx(ctx); err != nil {
			return maxFlow, nil, err
		}

		// 1) BFS for the shortest augmenting path
		for i := range via {
			via[i] = -1
		}
		queue = append(queue[:0], source)
		for head := 0; head < len(queue) && via[sink] < 0; head++ {
			u := queue[head]
			for _, i := range residual.out[u] {
				a := residual.arcs[i]
				if a.capacity > 0 && a.to != source && via[a.to] < 0 {
					via[a.to] = i
					queue = append(queue, a.to)
				}
			}
		}
		if via[sink] < 0 {
			break
		}

		// 2) Bottleneck along the path, walking back from sink
		bottleneck := int64(math.MaxInt64)
		for v := sink; v != source; v = residual.arcs[via[v]^1].to {
			if c := residual.arcs[via[v]].capacity; c < bottleneck {
				bottleneck = c
			}
		}

		// 3) Augment
		for v := sink; v != source; v = residual.arcs[via[v]^1].to {
			residual.push(via[v], bottleneck)
		}
		maxFlow += bottleneck
	}

	return maxFlow, residual, nil
}
