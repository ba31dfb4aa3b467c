// Package hopcroftkarp computes a maximum-cardinality matching between the
// panelists and slot-copies of a bipartite.Graph.
//
// What:
//
//   - Solve(g, opts...) resets every pairing to bipartite.Nil, then runs
//     phases until no augmenting path is left, and returns a *Matching.
//   - Each phase is a BFS layering pass followed by a DFS augmenting pass.
//
// Layering convention:
//
//   - Free panelists start at distance 1, matched panelists at 0, and
//     dist[Nil] at 0. Distance 0 means "not layered in this phase".
//   - The BFS walks panelist → slot-copy → that copy's partner. Reaching a
//     free copy means reaching Nil, so dist[Nil] ends up as the length of the
//     shortest augmenting path, or stays 0 when there is none.
//   - The DFS only follows edges whose target partner sits exactly one layer
//     deeper. A panelist that dead-ends is reset to 0 so later searches in the
//     same phase skip it.
//
// Pseudocode:
//
//	pair[*] ← Nil
//	while bfs() > 0:
//	    for p in panelists (insertion order):
//	        if pair[p] == Nil and dfs(p): size++
//
// Determinism:
//
//   - Given a fixed insertion order of panelists and adjacency the result is
//     fully reproducible. The matching size is the unique maximum; which
//     vertices get paired depends on that order.
//
// Complexity:
//
//   - O(√V) phases, each O(V + E); total O(E·√V).
//   - Memory: O(V) for pair, dist and the BFS queue.
//
// The engine performs no I/O and returns no errors. Matching.Validate is
// available for callers that want a fail-fast symmetry check.
package hopcroftkarp
