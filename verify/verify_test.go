package verify_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/panelsched/capacity"
	"github.com/katalvlaran/panelsched/verify"
)

// network builds a capacity network from an availability table.
func network(t *testing.T, slots, seats int, avail [][]int) *capacity.Network {
	t.Helper()
	n, err := capacity.NewNetwork(seats)
	require.NoError(t, err)
	for s := 0; s < slots; s++ {
		n.AddSlot(fmt.Sprintf("S%d", s))
	}
	for p, list := range avail {
		idx := n.AddPanelist(fmt.Sprintf("P%d", p))
		for _, s := range list {
			require.NoError(t, n.Declare(idx, s))
		}
	}

	return n
}

func TestBoundsOnExample(t *testing.T) {
	avail := [][]int{{0, 1}, {0, 2}, {1}, {1, 2}, {0, 1, 2}}
	for _, tc := range []struct {
		seats, want int
	}{
		{1, 3},
		{2, 5},
		{8, 5},
	} {
		inst := verify.Instance{Slots: 3, Capacity: tc.seats, Availability: avail}

		fb, err := verify.FlowBound(context.Background(), inst)
		require.NoError(t, err)
		assert.Equal(t, tc.want, fb, "flow, seats=%d", tc.seats)

		lb, err := verify.LPBound(inst)
		require.NoError(t, err)
		assert.Equal(t, tc.want, lb, "lp, seats=%d", tc.seats)
	}
}

func TestEmptyInstance(t *testing.T) {
	inst := verify.Instance{Slots: 2, Capacity: 3, Availability: [][]int{nil, nil}}

	rep, err := verify.Check(context.Background(), inst, 0)
	require.NoError(t, err)
	assert.Equal(t, verify.Report{}, rep)
}

func TestDuplicateDeclarationsIgnored(t *testing.T) {
	inst := verify.Instance{Slots: 1, Capacity: 1, Availability: [][]int{{0, 0, 0}}}

	fb, err := verify.FlowBound(context.Background(), inst)
	require.NoError(t, err)
	assert.Equal(t, 1, fb)
	lb, err := verify.LPBound(inst)
	require.NoError(t, err)
	assert.Equal(t, 1, lb)
}

func TestInvalidInstance(t *testing.T) {
	bad := []verify.Instance{
		{Slots: 1, Capacity: 0, Availability: [][]int{{0}}},
		{Slots: 1, Capacity: 1, Availability: [][]int{{1}}},
		{Slots: 1, Capacity: 1, Availability: [][]int{{-1}}},
	}
	for _, inst := range bad {
		_, err := verify.FlowBound(context.Background(), inst)
		require.ErrorIs(t, err, verify.ErrInvalidInstance)
		_, err = verify.LPBound(inst)
		require.ErrorIs(t, err, verify.ErrInvalidInstance)
	}
}

func TestCheckNotMaximum(t *testing.T) {
	inst := verify.Instance{Slots: 2, Capacity: 1, Availability: [][]int{{0}, {1}}}

	rep, err := verify.Check(context.Background(), inst, 1)
	require.ErrorIs(t, err, verify.ErrNotMaximum)
	assert.Equal(t, verify.Report{Matches: 1, FlowBound: 2, LPBound: 2}, rep)
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inst := verify.Instance{Slots: 1, Capacity: 1, Availability: [][]int{{0}}}

	_, err := verify.Check(ctx, inst, 1)
	require.ErrorIs(t, err, context.Canceled)
}

// TestSolverIsMaximum cross-checks Network.Solve against both bounds on
// random instances.
func TestSolverIsMaximum(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 60; i++ {
		panelists := r.Intn(9)
		slots := 1 + r.Intn(5)
		seats := 1 + r.Intn(3)
		avail := make([][]int, panelists)
		for p := range avail {
			for s := 0; s < slots; s++ {
				if r.Float64() < 0.4 {
					avail[p] = append(avail[p], s)
				}
			}
		}

		n := network(t, slots, seats, avail)
		a := n.Solve()
		inst := verify.FromNetwork(n)
		require.Equal(t, seats, inst.Capacity)

		rep, err := verify.Check(context.Background(), inst, a.Matches)
		require.NoError(t, err, "case %d: %+v", i, rep)
		require.Equal(t, rep.FlowBound, a.Matches, "case %d", i)
	}
}

// TestFlowAlgorithmsAgree runs the flow bound through every routine.
func TestFlowAlgorithmsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 40; i++ {
		slots := 1 + r.Intn(4)
		avail := make([][]int, r.Intn(10))
		for p := range avail {
			for s := 0; s < slots; s++ {
				if r.Intn(2) == 0 {
					avail[p] = append(avail[p], s)
				}
			}
		}
		inst := verify.Instance{Slots: slots, Capacity: 1 + r.Intn(3), Availability: avail}

		want, err := verify.FlowBound(context.Background(), inst)
		require.NoError(t, err)
		for _, alg := range []verify.Algorithm{verify.Dinic, verify.EdmondsKarp, verify.FordFulkerson} {
			got, err := verify.FlowBound(context.Background(), inst, verify.WithAlgorithm(alg))
			require.NoError(t, err)
			assert.Equal(t, want, got, "case %d %s", i, alg)
		}
		rep, err := verify.Check(context.Background(), inst, want, verify.WithAlgorithm(verify.FordFulkerson))
		require.NoError(t, err)
		assert.Equal(t, want, rep.LPBound)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]verify.Algorithm{
		"":               verify.Dinic,
		"Dinic":          verify.Dinic,
		"edmonds-karp":   verify.EdmondsKarp,
		"FORD-FULKERSON": verify.FordFulkerson,
	} {
		got, err := verify.ParseAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := verify.ParseAlgorithm("push-relabel")
	require.ErrorIs(t, err, verify.ErrUnknownAlgorithm)

	inst := verify.Instance{Slots: 1, Capacity: 1, Availability: [][]int{{0}}}
	_, err = verify.FlowBound(context.Background(), inst, verify.WithAlgorithm("push-relabel"))
	require.ErrorIs(t, err, verify.ErrUnknownAlgorithm)
}
