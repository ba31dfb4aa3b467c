package hopcroftkarp

import "github.com/katalvlaran/panelsched/bipartite"

// solver encapsulates mutable state for one Solve call.
type solver struct {
	g     *bipartite.Graph
	m     *Matching
	opts  Options
	queue []bipartite.VertexID
}

// Solve computes a maximum matching between the panelists and slot-copies
// of g and returns it. Every vertex starts paired to bipartite.Nil, so Solve
// may be called again on the same graph and yields a matching of the same size.
//
// Steps:
//  1. Allocate pair/dist with every vertex paired to Nil.
//  2. BFS layering; stop when dist[Nil] stays 0.
//  3. DFS from each free panelist in insertion order; count successes.
//  4. Report the phase through OnPhase and repeat from 2.
//
// Empty panelist or slot sets yield a zero-size matching.
func Solve(g *bipartite.Graph, opts ...Option) *Matching {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &solver{
		g:     g,
		m:     newMatching(g),
		opts:  o,
		queue: make([]bipartite.VertexID, 0, len(g.Panelists())+1),
	}

	for {
		shortest := s.layer()
		if shortest == 0 {
			break
		}

		augmented := 0
		for _, p := range g.Panelists() {
			if s.m.pair[p] == bipartite.Nil && s.augment(p) {
				augmented++
			}
		}
		s.m.size += augmented
		s.m.phases++
		s.opts.OnPhase(PhaseStats{Phase: s.m.phases, ShortestPath: shortest, Augmented: augmented})
	}

	return s.m
}

// next returns the layer a neighbor's partner must sit on to be followed
// from a vertex at distance d. Distance 0 is the unlayered value and maps
// to itself.
func next(d int) int {
	if d == 0 {
		return 0
	}

	return d + 1
}

// layer runs the BFS pass and returns dist[Nil].
func (s *solver) layer() int {
	pair, dist := s.m.pair, s.m.dist

	// Seed: free panelists on layer 1, matched ones unlayered.
	s.queue = s.queue[:0]
	for _, p := range s.g.Panelists() {
		if pair[p] == bipartite.Nil {
			dist[p] = 1
			s.queue = append(s.queue, p)
		} else {
			dist[p] = 0
		}
	}
	dist[bipartite.Nil] = 0

	for head := 0; head < len(s.queue); head++ {
		p := s.queue[head]
		for _, slot := range s.g.Adjacent(p) {
			q := pair[slot]
			if dist[q] == 0 {
				dist[q] = next(dist[p])
				s.queue = append(s.queue, q)
			}
		}
	}

	return dist[bipartite.Nil]
}

// augment searches depth-first for an augmenting path from p along the
// current layering, flipping the path on success. Reaching Nil means the
// last slot-copy on the path was free.
func (s *solver) augment(p bipartite.VertexID) bool {
	if p == bipartite.Nil {
		return true
	}

	pair, dist := s.m.pair, s.m.dist
	want := next(dist[p])
	for _, slot := range s.g.Adjacent(p) {
		if dist[pair[slot]] == want && s.augment(pair[slot]) {
			pair[slot] = p
			pair[p] = slot

			return true
		}
	}

	// Dead end for the rest of this phase.
	dist[p] = 0

	return false
}
