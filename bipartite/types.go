package bipartite

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrVertexNotFound indicates an operation referenced an ID outside the arena.
	ErrVertexNotFound = errors.New("bipartite: vertex not found")

	// ErrSentinelEdge indicates an attempt to connect the Nil sentinel.
	ErrSentinelEdge = errors.New("bipartite: sentinel vertex cannot have edges")

	// ErrSameSide indicates an edge between two panelists or two slot-copies.
	ErrSameSide = errors.New("bipartite: endpoints on the same side")

	// ErrBadSlotIndex indicates a negative logical slot index.
	ErrBadSlotIndex = errors.New("bipartite: logical slot index must be non-negative")
)

// VertexID addresses a vertex inside its Graph's arena.
type VertexID int

// Nil is the sentinel vertex: the partner of every unmatched vertex.
const Nil VertexID = 0

// NoSlot is returned by LogicalSlot for vertices that are not slot-copies.
const NoSlot = -1

// Side tells which partition a vertex belongs to.
type Side uint8

const (
	// SideNone marks the sentinel.
	SideNone Side = iota
	// SidePanelist marks a panelist vertex.
	SidePanelist
	// SideSlot marks a slot-copy vertex.
	SideSlot
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SidePanelist:
		return "panelist"
	case SideSlot:
		return "slot"
	default:
		return "none"
	}
}

// vertex is one arena entry.
type vertex struct {
	name string
	side Side
	slot int        // logical slot index; NoSlot unless side == SideSlot
	adj  []VertexID // opposite-side neighbors in insertion order
}

// Graph is an arena-backed bipartite availability graph.
//
// vertices[0] is always the Nil sentinel. panelists and slots keep the
// insertion order of each side.
type Graph struct {
	vertices  []vertex
	panelists []VertexID
	slots     []VertexID
	edges     int
}
