package capacity

import (
	"fmt"

	"github.com/katalvlaran/panelsched/bipartite"
	"github.com/katalvlaran/panelsched/hopcroftkarp"
)

// Network builds a capacity-expanded bipartite graph.
type Network struct {
	g         *bipartite.Graph
	max       int
	panelists []bipartite.VertexID   // logical panelist → vertex
	copies    [][]bipartite.VertexID // logical slot → its max copies
	declared  map[[2]int]struct{}    // (panelist, slot) pairs already connected
	avail     [][]int                // logical panelist → slots in declaration order
}

// NewNetwork returns an empty network whose slots accept up to maxPanelists
// panelists each.
func NewNetwork(maxPanelists int) (*Network, error) {
	if maxPanelists < 1 {
		return nil, fmt.Errorf("NewNetwork(%d): %w", maxPanelists, ErrInvalidCapacity)
	}

	return &Network{
		g:        bipartite.NewGraph(),
		max:      maxPanelists,
		declared: make(map[[2]int]struct{}),
	}, nil
}

// AddPanelist registers a panelist and returns its logical index.
func (n *Network) AddPanelist(name string) int {
	n.panelists = append(n.panelists, n.g.AddPanelist(name))
	n.avail = append(n.avail, nil)

	return len(n.panelists) - 1
}

// AddSlot registers a logical slot, expands it into Capacity() copies and
// returns its logical index.
func (n *Network) AddSlot(name string) int {
	idx := len(n.copies)
	ids := make([]bipartite.VertexID, n.max)
	for k := range ids {
		// idx is never negative, so AddSlotCopy cannot fail here.
		id, _ := n.g.AddSlotCopy(name, idx)
		ids[k] = id
	}
	n.copies = append(n.copies, ids)

	return idx
}

// Declare records that panelist p is available for slot s by connecting p
// to every copy of s. Repeated declarations are no-ops.
func (n *Network) Declare(p, s int) error {
	if p < 0 || p >= len(n.panelists) {
		return fmt.Errorf("Declare(%d, %d): %w", p, s, ErrPanelistNotFound)
	}
	if s < 0 || s >= len(n.copies) {
		return fmt.Errorf("Declare(%d, %d): %w", p, s, ErrSlotNotFound)
	}
	key := [2]int{p, s}
	if _, ok := n.declared[key]; ok {
		return nil
	}

	for _, c := range n.copies[s] {
		if err := n.g.Connect(n.panelists[p], c); err != nil {
			return fmt.Errorf("Declare(%d, %d): %w", p, s, err)
		}
	}
	n.declared[key] = struct{}{}
	n.avail[p] = append(n.avail[p], s)

	return nil
}

// Solve runs Hopcroft–Karp on the expanded graph and maps every matched
// slot-copy back to its logical slot.
func (n *Network) Solve(opts ...hopcroftkarp.Option) *Assignment {
	m := hopcroftkarp.Solve(n.g, opts...)

	a := &Assignment{
		Matches: m.Size(),
		Phases:  m.Phases(),
		slots:   make([]int, len(n.panelists)),
		load:    make([]int, len(n.copies)),
		m:       m,
	}
	for p, v := range n.panelists {
		a.slots[p] = Unassigned
		if c := m.Pair(v); c != bipartite.Nil {
			s := n.g.LogicalSlot(c)
			a.slots[p] = s
			a.load[s]++
		}
	}

	return a
}

// Graph exposes the expanded graph for callers that drive the engine directly.
func (n *Network) Graph() *bipartite.Graph { return n.g }

// Capacity returns the number of copies per logical slot.
func (n *Network) Capacity() int { return n.max }

// NumPanelists returns the number of registered panelists.
func (n *Network) NumPanelists() int { return len(n.panelists) }

// NumSlots returns the number of logical slots.
func (n *Network) NumSlots() int { return len(n.copies) }

// PanelistVertex returns the graph vertex of logical panelist p, or Nil.
func (n *Network) PanelistVertex(p int) bipartite.VertexID {
	if p < 0 || p >= len(n.panelists) {
		return bipartite.Nil
	}

	return n.panelists[p]
}

// Copies returns the slot-copy vertices of logical slot s.
func (n *Network) Copies(s int) []bipartite.VertexID {
	if s < 0 || s >= len(n.copies) {
		return nil
	}

	return append([]bipartite.VertexID(nil), n.copies[s]...)
}

// Availability returns, per panelist, the declared logical slots in
// declaration order.
func (n *Network) Availability() [][]int {
	out := make([][]int, len(n.avail))
	for p, list := range n.avail {
		out[p] = append([]int(nil), list...)
	}

	return out
}
