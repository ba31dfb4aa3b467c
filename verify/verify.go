package verify

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/panelsched/maxflow"
)

// lpTolerance is the simplex pivot tolerance.
const lpTolerance = 1e-7

// FlowBound returns the maximum flow of the logical instance, computed with
// Dinic unless WithAlgorithm picks another routine.
//
// Vertex layout: 0 = source, 1..P = panelists, P+1..P+S = slots, P+S+1 = sink.
func FlowBound(ctx context.Context, inst Instance, opts ...Option) (int, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	solve, err := o.Algorithm.solver()
	if err != nil {
		return 0, fmt.Errorf("FlowBound: %w", err)
	}
	edges, err := inst.edges()
	if err != nil {
		return 0, fmt.Errorf("FlowBound: %w", err)
	}

	numP := len(inst.Availability)
	source, sink := 0, numP+inst.Slots+1
	nw := maxflow.NewNetwork(sink + 1)
	for p := 0; p < numP; p++ {
		if _, err = nw.AddEdge(source, 1+p, 1); err != nil {
			return 0, fmt.Errorf("FlowBound: %w", err)
		}
	}
	for s := 0; s < inst.Slots; s++ {
		if _, err = nw.AddEdge(1+numP+s, sink, int64(inst.Capacity)); err != nil {
			return 0, fmt.Errorf("FlowBound: %w", err)
		}
	}
	for _, e := range edges {
		if _, err = nw.AddEdge(1+e[0], 1+numP+e[1], 1); err != nil {
			return 0, fmt.Errorf("FlowBound: %w", err)
		}
	}

	mf, _, err := solve(ctx, nw, source, sink)
	if err != nil {
		return 0, fmt.Errorf("FlowBound: %w", err)
	}

	return int(mf), nil
}

// LPBound returns the optimum of the LP relaxation
//
//	maximize   Σ x_e
//	subject to Σ_{e ∋ p} x_e ≤ 1         for every panelist p
//	           Σ_{e ∋ s} x_e ≤ capacity  for every slot s
//	           x ≥ 0
//
// rewritten in the standard form gonum expects (minimize, equalities) with
// one slack per row. The slack columns form the initial basis.
func LPBound(inst Instance) (int, error) {
	edges, err := inst.edges()
	if err != nil {
		return 0, fmt.Errorf("LPBound: %w", err)
	}
	if len(edges) == 0 {
		return 0, nil
	}

	numP := len(inst.Availability)
	rows := numP + inst.Slots
	cols := len(edges) + rows

	A := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	for j, e := range edges {
		A.Set(e[0], j, 1)
		A.Set(numP+e[1], j, 1)
		c[j] = -1
	}
	basic := make([]int, rows)
	for i := 0; i < rows; i++ {
		A.Set(i, len(edges)+i, 1)
		basic[i] = len(edges) + i
		if i < numP {
			b[i] = 1
		} else {
			b[i] = float64(inst.Capacity)
		}
	}

	optF, _, err := lp.Simplex(c, A, b, lpTolerance, basic)
	if err != nil {
		return 0, fmt.Errorf("LPBound: simplex: %w", err)
	}

	return int(math.Round(-optF)), nil
}

// Check computes both bounds and compares them against matches.
// The returned Report is filled even when an ErrNotMaximum or
// ErrBoundsDisagree error is returned.
func Check(ctx context.Context, inst Instance, matches int, opts ...Option) (Report, error) {
	rep := Report{Matches: matches}

	var err error
	if rep.FlowBound, err = FlowBound(ctx, inst, opts...); err != nil {
		return rep, err
	}
	if rep.LPBound, err = LPBound(inst); err != nil {
		return rep, err
	}

	if rep.FlowBound != rep.LPBound {
		return rep, fmt.Errorf("Check: flow %d, lp %d: %w", rep.FlowBound, rep.LPBound, ErrBoundsDisagree)
	}
	if matches < rep.FlowBound {
		return rep, fmt.Errorf("Check: %d matches, bound %d: %w", matches, rep.FlowBound, ErrNotMaximum)
	}

	return rep, nil
}
