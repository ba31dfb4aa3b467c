package hopcroftkarp

import (
	"fmt"

	"github.com/katalvlaran/panelsched/bipartite"
)

// Matching is the pairing state of one solve.
//
// pair and dist are indexed by bipartite.VertexID and sized by g.Order(),
// so pair[Nil] and dist[Nil] are ordinary entries.
type Matching struct {
	g      *bipartite.Graph
	pair   []bipartite.VertexID
	dist   []int
	size   int
	phases int
}

// newMatching allocates a matching with every vertex paired to Nil.
func newMatching(g *bipartite.Graph) *Matching {
	n := g.Order()

	return &Matching{
		g:    g,
		pair: make([]bipartite.VertexID, n), // zero value is Nil
		dist: make([]int, n),
	}
}

// Size returns the number of matched panelist/slot-copy pairs.
func (m *Matching) Size() int { return m.size }

// Phases returns how many phases augmented the matching.
func (m *Matching) Phases() int { return m.phases }

// Pair returns the partner of v, or bipartite.Nil when v is unmatched or unknown.
func (m *Matching) Pair(v bipartite.VertexID) bipartite.VertexID {
	if v < 0 || int(v) >= len(m.pair) {
		return bipartite.Nil
	}

	return m.pair[v]
}

// Matched reports whether v has a partner.
func (m *Matching) Matched(v bipartite.VertexID) bool {
	return v != bipartite.Nil && m.Pair(v) != bipartite.Nil
}

// Edge is one matched panelist/slot-copy pair.
type Edge struct {
	Panelist bipartite.VertexID
	Slot     bipartite.VertexID
}

// Pairs lists the matched pairs in panelist insertion order.
func (m *Matching) Pairs() []Edge {
	out := make([]Edge, 0, m.size)
	for _, p := range m.g.Panelists() {
		if s := m.pair[p]; s != bipartite.Nil {
			out = append(out, Edge{Panelist: p, Slot: s})
		}
	}

	return out
}

// Validate checks the post-solve invariants: every pairing is symmetric
// and follows an edge of the graph.
func (m *Matching) Validate() error {
	for _, v := range append(append([]bipartite.VertexID(nil), m.g.Panelists()...), m.g.SlotCopies()...) {
		u := m.pair[v]
		if u == bipartite.Nil {
			continue
		}
		if m.pair[u] != v {
			return fmt.Errorf("Validate: pair[%d]=%d but pair[%d]=%d: %w", v, u, u, m.pair[u], ErrAsymmetricPair)
		}
		if !adjacent(m.g, v, u) {
			return fmt.Errorf("Validate: %d–%d: %w", v, u, ErrNotAdjacent)
		}
	}

	return nil
}

// adjacent reports whether u appears in v's adjacency.
func adjacent(g *bipartite.Graph, v, u bipartite.VertexID) bool {
	for _, w := range g.Adjacent(v) {
		if w == u {
			return true
		}
	}

	return false
}
