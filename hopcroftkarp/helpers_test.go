package hopcroftkarp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/panelsched/bipartite"
	"github.com/katalvlaran/panelsched/hopcroftkarp"
)

// fixture is a graph built from per-panelist availability lists where each
// logical slot is expanded into capacity copies.
type fixture struct {
	g         *bipartite.Graph
	panelists []bipartite.VertexID
	copies    [][]bipartite.VertexID // copies[slot] = slot-copy IDs
	avail     [][]int
	capacity  int
}

// buildFixture expands slots×capacity copies and connects every declared
// availability to all copies of the slot.
func buildFixture(t testing.TB, slots, capacity int, avail [][]int) *fixture {
	t.Helper()
	f := &fixture{g: bipartite.NewGraph(), avail: avail, capacity: capacity}
	for i := range avail {
		f.panelists = append(f.panelists, f.g.AddPanelist(string(rune('A'+i%26))))
	}
	f.copies = make([][]bipartite.VertexID, slots)
	for s := 0; s < slots; s++ {
		for k := 0; k < capacity; k++ {
			id, err := f.g.AddSlotCopy("S", s)
			require.NoError(t, err)
			f.copies[s] = append(f.copies[s], id)
		}
	}
	for p, list := range avail {
		for _, s := range list {
			for _, c := range f.copies[s] {
				require.NoError(t, f.g.Connect(f.panelists[p], c))
			}
		}
	}

	return f
}

// randomAvailability draws a panelists×slots availability table where each
// cell is set with probability density.
func randomAvailability(r *rand.Rand, panelists, slots int, density float64) [][]int {
	avail := make([][]int, panelists)
	for p := range avail {
		for s := 0; s < slots; s++ {
			if r.Float64() < density {
				avail[p] = append(avail[p], s)
			}
		}
	}

	return avail
}

// bruteForce computes the maximum matching size with simple augmenting
// paths (Kuhn), independent of the layered search under test.
func bruteForce(g *bipartite.Graph) int {
	owner := make(map[bipartite.VertexID]bipartite.VertexID)
	var try func(p bipartite.VertexID, seen map[bipartite.VertexID]bool) bool
	try = func(p bipartite.VertexID, seen map[bipartite.VertexID]bool) bool {
		for _, s := range g.Adjacent(p) {
			if seen[s] {
				continue
			}
			seen[s] = true
			if q, ok := owner[s]; !ok || try(q, seen) {
				owner[s] = p
				return true
			}
		}
		return false
	}

	size := 0
	for _, p := range g.Panelists() {
		if try(p, make(map[bipartite.VertexID]bool)) {
			size++
		}
	}

	return size
}

// requireInvariants checks symmetry, single assignment and the capacity
// bound of m against f.
func requireInvariants(t testing.TB, f *fixture, m *hopcroftkarp.Matching) {
	t.Helper()
	require.NoError(t, m.Validate())

	load := make([]int, len(f.copies))
	matched := 0
	for _, p := range f.panelists {
		s := m.Pair(p)
		if s == bipartite.Nil {
			continue
		}
		matched++
		require.Equal(t, p, m.Pair(s), "symmetry")
		require.Equal(t, bipartite.SideSlot, f.g.Side(s))
		load[f.g.LogicalSlot(s)]++
	}
	require.Equal(t, m.Size(), matched)

	demand := make([]int, len(f.copies))
	for _, list := range f.avail {
		seen := map[int]bool{}
		for _, s := range list {
			if !seen[s] {
				demand[s]++
				seen[s] = true
			}
		}
	}
	for s := range load {
		require.LessOrEqual(t, load[s], f.capacity, "slot %d over capacity", s)
		require.LessOrEqual(t, load[s], demand[s], "slot %d over demand", s)
	}
}
