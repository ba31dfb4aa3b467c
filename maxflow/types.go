package maxflow

import "errors"

var (
	// ErrVertexOutOfRange is returned when an edge endpoint is not in 0..n-1.
	ErrVertexOutOfRange = errors.New("maxflow: vertex out of range")

	// ErrNegativeCapacity is returned when an edge is added with capacity < 0.
	ErrNegativeCapacity = errors.New("maxflow: negative capacity")

	// ErrSourceNotFound is returned when the source is not in the network.
	ErrSourceNotFound = errors.New("maxflow: source vertex not found")

	// ErrSinkNotFound is returned when the sink is not in the network.
	ErrSinkNotFound = errors.New("maxflow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("maxflow: source equals sink")
)

// arc is one directed residual arc; its partner is at index i^1.
type arc struct {
	to       int
	capacity int64 // residual capacity
	original int64 // capacity at AddEdge time; 0 for reverse arcs
}

// Network is a residual flow network over vertices 0..n-1.
type Network struct {
	arcs []arc
	out  [][]int // out[u] = indexes into arcs leaving u
}

// NewNetwork returns an empty network with n vertices.
func NewNetwork(n int) *Network {
	if n < 0 {
		n = 0
	}

	return &Network{out: make([][]int, n)}
}

// Order returns the number of vertices.
func (nw *Network) Order() int { return len(nw.out) }

// clone returns a deep copy of nw.
func (nw *Network) clone() *Network {
	c := &Network{
		arcs: append([]arc(nil), nw.arcs...),
		out:  make([][]int, len(nw.out)),
	}
	for u, list := range nw.out {
		c.out[u] = append([]int(nil), list...)
	}

	return c
}
