package bipartite

import "fmt"

// initialArena is the starting capacity of the vertex arena (sentinel included).
const initialArena = 16

// NewGraph returns an empty graph whose arena holds only the Nil sentinel.
// Complexity: O(1).
func NewGraph() *Graph {
	g := &Graph{vertices: make([]vertex, 1, initialArena)}
	g.vertices[Nil] = vertex{side: SideNone, slot: NoSlot}

	return g
}

// AddPanelist allocates a panelist vertex labelled name and returns its ID.
// Names need not be unique.
func (g *Graph) AddPanelist(name string) VertexID {
	id := g.push(vertex{name: name, side: SidePanelist, slot: NoSlot})
	g.panelists = append(g.panelists, id)

	return id
}

// AddSlotCopy allocates one slot-copy vertex standing in for logical slot
// index slot. Several copies may share the same index.
func (g *Graph) AddSlotCopy(name string, slot int) (VertexID, error) {
	if slot < 0 {
		return Nil, fmt.Errorf("AddSlotCopy(%q, %d): %w", name, slot, ErrBadSlotIndex)
	}
	id := g.push(vertex{name: name, side: SideSlot, slot: slot})
	g.slots = append(g.slots, id)

	return id, nil
}

// push appends v to the arena and returns its ID.
func (g *Graph) push(v vertex) VertexID {
	g.vertices = append(g.vertices, v)

	return VertexID(len(g.vertices) - 1)
}

// Connect adds the undirected edge a–b: b joins a's adjacency and a joins b's.
//
// Exactly one endpoint must be a panelist and the other a slot-copy.
// Connecting the same pair twice records a parallel edge, which the
// matching engine tolerates.
func (g *Graph) Connect(a, b VertexID) error {
	// 1) Both IDs must exist in the arena.
	if !g.HasVertex(a) {
		return fmt.Errorf("Connect(%d, %d): %d: %w", a, b, a, ErrVertexNotFound)
	}
	if !g.HasVertex(b) {
		return fmt.Errorf("Connect(%d, %d): %d: %w", a, b, b, ErrVertexNotFound)
	}
	// 2) The sentinel never carries edges.
	if a == Nil || b == Nil {
		return fmt.Errorf("Connect(%d, %d): %w", a, b, ErrSentinelEdge)
	}
	// 3) Strict bipartiteness.
	if g.vertices[a].side == g.vertices[b].side {
		return fmt.Errorf("Connect(%d, %d): both %s: %w", a, b, g.vertices[a].side, ErrSameSide)
	}

	g.vertices[a].adj = append(g.vertices[a].adj, b)
	g.vertices[b].adj = append(g.vertices[b].adj, a)
	g.edges++

	return nil
}

// HasVertex reports whether id addresses an arena entry (Nil included).
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Panelists returns the panelist IDs in insertion order.
// The slice is owned by the graph and must not be modified.
func (g *Graph) Panelists() []VertexID { return g.panelists }

// SlotCopies returns the slot-copy IDs in insertion order.
// The slice is owned by the graph and must not be modified.
func (g *Graph) SlotCopies() []VertexID { return g.slots }

// Adjacent returns the neighbors of id in insertion order, or nil for an
// unknown ID. The slice is owned by the graph and must not be modified.
func (g *Graph) Adjacent(id VertexID) []VertexID {
	if !g.HasVertex(id) {
		return nil
	}

	return g.vertices[id].adj
}

// Name returns the display label of id ("" for Nil or unknown IDs).
func (g *Graph) Name(id VertexID) string {
	if !g.HasVertex(id) {
		return ""
	}

	return g.vertices[id].name
}

// Side returns the partition of id; SideNone for Nil and unknown IDs.
func (g *Graph) Side(id VertexID) Side {
	if !g.HasVertex(id) {
		return SideNone
	}

	return g.vertices[id].side
}

// LogicalSlot returns the logical slot index of a slot-copy, or NoSlot.
func (g *Graph) LogicalSlot(id VertexID) int {
	if !g.HasVertex(id) {
		return NoSlot
	}

	return g.vertices[id].slot
}

// Order returns the arena length, sentinel included. Matching state slices
// are sized by Order.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges added through Connect.
func (g *Graph) Size() int { return g.edges }
