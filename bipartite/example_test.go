package bipartite_test

import (
	"fmt"

	"github.com/katalvlaran/panelsched/bipartite"
)

// ExampleGraph builds a two-panelist graph against one slot with two copies.
func ExampleGraph() {
	g := bipartite.NewGraph()
	ann := g.AddPanelist("Ann")
	bob := g.AddPanelist("Bob")
	c0, _ := g.AddSlotCopy("Mon 9:00", 0)
	c1, _ := g.AddSlotCopy("Mon 9:00", 0)

	for _, p := range []bipartite.VertexID{ann, bob} {
		for _, c := range []bipartite.VertexID{c0, c1} {
			_ = g.Connect(p, c)
		}
	}

	fmt.Println("vertices:", g.Order()-1, "edges:", g.Size())
	fmt.Println("Ann sees:", len(g.Adjacent(ann)), "copies of slot", g.LogicalSlot(c1))
	// Output:
	// vertices: 4 edges: 4
	// Ann sees: 2 copies of slot 0
}
