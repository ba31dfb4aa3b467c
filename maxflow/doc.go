// Package maxflow implements maximum-flow algorithms on compact,
// index-addressed residual networks.
//
// The key algorithms offered are:
//
//   - Dinic
//
//   - Method: BFS level graph + blocking flow via DFS with current-arc pointers.
//
//   - Time:   O(E · √V) on unit-capacity networks, O(V² · E) in general.
//
//   - Memory: O(V + E).
//
//   - Edmonds–Karp
//
//   - Method: BFS for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V + E).
//
//   - Ford–Fulkerson
//
//   - Method: iterative DFS for any augmenting path.
//
//   - Time:   O(E · F), F = max-flow value.
//
//   - Memory: O(V + E).
//
// # Network
//
// Vertices are dense integers 0..n-1. AddEdge stores a forward arc and its
// reverse arc side by side, so arc i and arc i^1 are always partners:
//
//	arcs[2k]   u→v  capacity c
//	arcs[2k+1] v→u  capacity 0
//
// All algorithms work on a clone of the input and return it as the
// residual network; the input is never mutated. Flow on an edge is read
// back with residual.Flow(edgeIndex).
//
// # Errors
//
//	ErrVertexOutOfRange - an endpoint outside 0..n-1.
//	ErrNegativeCapacity - AddEdge with capacity < 0.
//	ErrSourceNotFound   - source outside the network.
//	ErrSinkNotFound     - sink outside the network.
//	ErrSameEndpoints    - source == sink.
//	context.Canceled / context.DeadlineExceeded - ctx done between augmentations.
//
// The scheduler uses this package to cross-check the matching engine on
// the logical panelist/slot problem: source→panelist (1), panelist→slot (1),
// slot→sink (per-slot capacity).
package maxflow
