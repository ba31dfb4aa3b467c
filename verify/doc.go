// Package verify produces independent evidence that a schedule is maximum.
//
// Both bounds work on the logical problem (no slot-copies):
//
//   - FlowBound runs a max-flow routine (Dinic by default, or Edmonds–Karp
//     or Ford–Fulkerson via WithAlgorithm) on
//     source → panelist (1) → slot (1) → sink (capacity).
//   - LPBound solves the LP relaxation of the same problem with gonum's
//     simplex. The constraint matrix of a bipartite degree-bounded problem is
//     totally unimodular, so the LP optimum is integral.
//
// Check compares a matching size against both.
package verify
