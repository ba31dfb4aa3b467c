// Package bipartite holds the availability graph that the matching engine
// works on: panelist vertices on one side, slot-copy vertices on the other,
// and undirected availability edges between them.
//
// What:
//
//   - Graph: an arena of vertices addressed by stable integer VertexIDs.
//   - Nil: arena slot 0, a real sentinel vertex meaning "no partner".
//   - Panelist vertices (SidePanelist) and slot-copy vertices (SideSlot);
//     slot-copies carry the logical slot index they stand in for.
//
// Why:
//
//   - Index-addressed vertices keep the matching state in flat slices
//     (pair[v], dist[v]) instead of pointer webs.
//   - Keeping the sentinel as a real arena slot lets the Hopcroft–Karp
//     termination test read dist[Nil] directly.
//
// Construction contract:
//
//   - AddPanelist / AddSlotCopy allocate vertices with empty adjacency.
//   - Connect adds an undirected panelist↔slot-copy edge and rejects
//     same-side edges, edges touching Nil, and unknown IDs.
//   - Panelists() and SlotCopies() enumerate in insertion order; that order
//     drives the engine's tie-breaking and nothing else.
//
// Errors:
//
//   - ErrVertexNotFound   unknown VertexID.
//   - ErrSentinelEdge     an endpoint is Nil.
//   - ErrSameSide         both endpoints on the same side.
//   - ErrBadSlotIndex     negative logical slot index.
//
// Complexity:
//
//   - AddPanelist, AddSlotCopy, Connect: O(1) amortized.
//   - Memory: O(V + E).
//
// A Graph is not safe for concurrent mutation; build it, solve it, read it.
package bipartite
