package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/panelsched/capacity"
	"github.com/katalvlaran/panelsched/maxflow"
)

var (
	// ErrNotMaximum indicates a matching smaller than the flow bound.
	ErrNotMaximum = errors.New("verify: matching is not maximum")

	// ErrBoundsDisagree indicates that the flow and LP bounds differ.
	ErrBoundsDisagree = errors.New("verify: flow and LP bounds disagree")

	// ErrInvalidInstance indicates a capacity below one or an out-of-range slot.
	ErrInvalidInstance = errors.New("verify: invalid instance")
)

// Instance is the logical scheduling problem.
type Instance struct {
	// Slots is the number of logical slots.
	Slots int

	// Capacity is the maximum number of panelists per slot.
	Capacity int

	// Availability[p] lists the slots panelist p declared. Duplicates are ignored.
	Availability [][]int
}

// FromNetwork extracts the logical instance from a capacity network.
func FromNetwork(n *capacity.Network) Instance {
	return Instance{
		Slots:        n.NumSlots(),
		Capacity:     n.Capacity(),
		Availability: n.Availability(),
	}
}

// Report holds the size being checked and the two independent bounds.
type Report struct {
	Matches   int
	FlowBound int
	LPBound   int
}

// edges returns the deduplicated (panelist, slot) pairs of inst.
func (inst Instance) edges() ([][2]int, error) {
	if inst.Capacity < 1 || inst.Slots < 0 {
		return nil, ErrInvalidInstance
	}
	seen := make(map[[2]int]struct{})
	var out [][2]int
	for p, list := range inst.Availability {
		for _, s := range list {
			if s < 0 || s >= inst.Slots {
				return nil, ErrInvalidInstance
			}
			key := [2]int{p, s}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}

	return out, nil
}

// ErrUnknownAlgorithm indicates an Algorithm name with no max-flow routine.
var ErrUnknownAlgorithm = errors.New("verify: unknown flow algorithm")

// Algorithm names the max-flow routine behind FlowBound.
type Algorithm string

const (
	Dinic         Algorithm = "dinic"
	EdmondsKarp   Algorithm = "edmonds-karp"
	FordFulkerson Algorithm = "ford-fulkerson"
)

// ParseAlgorithm validates name. An empty name selects Dinic.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(name)); a {
	case "":
		return Dinic, nil
	case Dinic, EdmondsKarp, FordFulkerson:
		return a, nil
	}

	return "", fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// flowFunc is the shared shape of the maxflow routines.
type flowFunc func(context.Context, *maxflow.Network, int, int) (int64, *maxflow.Network, error)

func (a Algorithm) solver() (flowFunc, error) {
	switch a {
	case Dinic, "":
		return maxflow.Dinic, nil
	case EdmondsKarp:
		return maxflow.EdmondsKarp, nil
	case FordFulkerson:
		return maxflow.FordFulkerson, nil
	}

	return nil, fmt.Errorf("%q: %w", string(a), ErrUnknownAlgorithm)
}

// Options configures FlowBound and Check.
type Options struct {
	// Algorithm selects the max-flow routine; Dinic by default.
	Algorithm Algorithm
}

// Option configures verification via functional arguments.
type Option func(*Options)

// WithAlgorithm selects the max-flow routine used for the flow bound.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}
