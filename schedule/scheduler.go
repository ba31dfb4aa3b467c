package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/panelsched/capacity"
	"github.com/katalvlaran/panelsched/config"
	"github.com/katalvlaran/panelsched/hopcroftkarp"
	"github.com/katalvlaran/panelsched/logger"
	"github.com/katalvlaran/panelsched/metrics"
	"github.com/katalvlaran/panelsched/roster"
	"github.com/katalvlaran/panelsched/verify"
)

// ErrInconsistent indicates an assignment that breaks availability or capacity.
var ErrInconsistent = errors.New("schedule: inconsistent assignment")

// Result is the outcome of one run.
type Result struct {
	RunID    string
	Matches  int
	Phases   int
	Capacity int

	// Assigned[p] is the slot index of panelist p, or roster.Unassigned.
	Assigned []int

	// Report is set when verification ran.
	Report *verify.Report

	Duration time.Duration
}

// Scheduler turns rosters into assignments.
type Scheduler struct {
	cfg config.ScheduleConfig
	alg verify.Algorithm
	log logger.Logger
	rec metrics.Recorder
	now func() time.Time
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger; nil is ignored.
func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder sets the metrics recorder; nil is ignored.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Scheduler) {
		if r != nil {
			s.rec = r
		}
	}
}

// New validates cfg and returns a Scheduler with no-op logging and metrics
// unless overridden.
func New(cfg config.ScheduleConfig, opts ...Option) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	alg, err := verify.ParseAlgorithm(cfg.FlowAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	s := &Scheduler{
		cfg: cfg,
		alg: alg,
		log: logger.NopLogger{},
		rec: metrics.NopRecorder{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run schedules r. The context is checked between stages and passed to the
// verification pass.
func (s *Scheduler) Run(ctx context.Context, r *roster.Roster) (*Result, error) {
	start := s.now()
	res := &Result{RunID: uuid.NewString(), Capacity: s.cfg.MaxPanelists}

	n, err := build(r, s.cfg.MaxPanelists)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", res.RunID, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	s.log.Debugf("run %s: %d panelists, %d slots expanded to %d slot-copies, %d edges",
		res.RunID, n.NumPanelists(), n.NumSlots(), len(n.Graph().SlotCopies()), n.Graph().Size())

	a := n.Solve(hopcroftkarp.WithOnPhase(func(ps hopcroftkarp.PhaseStats) {
		s.log.Debugw("phase", map[string]any{
			"run_id":        res.RunID,
			"phase":         ps.Phase,
			"shortest_path": ps.ShortestPath,
			"augmented":     ps.Augmented,
		})
	}))
	if err = a.Matching().Validate(); err != nil {
		return nil, fmt.Errorf("run %s: %w", res.RunID, err)
	}
	res.Matches, res.Phases, res.Assigned = a.Matches, a.Phases, a.Slots()
	if err = check(r, res.Assigned, s.cfg.MaxPanelists); err != nil {
		return nil, fmt.Errorf("run %s: %w", res.RunID, err)
	}

	if s.cfg.Verify {
		rep, err := verify.Check(ctx, verify.FromNetwork(n), res.Matches, verify.WithAlgorithm(s.alg))
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", res.RunID, err)
		}
		res.Report = &rep
	}
	res.Duration = s.now().Sub(start)

	if err = s.rec.RecordSolve(metrics.SolveStats{
		Panelists: len(r.Panelists),
		Slots:     len(r.Slots),
		Capacity:  s.cfg.MaxPanelists,
		Matches:   res.Matches,
		Phases:    res.Phases,
		Duration:  res.Duration,
		Verified:  res.Report != nil,
	}); err != nil {
		s.log.Warnf("run %s: record metrics: %v", res.RunID, err)
	}

	s.log.Infof("run %s: assigned %d of %d panelists to %d slots (capacity %d, %d phases, %s)",
		res.RunID, res.Matches, len(r.Panelists), len(r.Slots), s.cfg.MaxPanelists, res.Phases, res.Duration)
	if unassigned := len(r.Panelists) - res.Matches; unassigned > 0 {
		s.log.Warnf("run %s: %d panelists left without a slot", res.RunID, unassigned)
	}

	return res, nil
}

// build expands r into a capacity network in roster order.
func build(r *roster.Roster, seats int) (*capacity.Network, error) {
	n, err := capacity.NewNetwork(seats)
	if err != nil {
		return nil, err
	}
	for _, name := range r.Slots {
		n.AddSlot(name)
	}
	for _, pl := range r.Panelists {
		p := n.AddPanelist(pl.Name)
		for _, slot := range pl.Available {
			if err = n.Declare(p, slot); err != nil {
				return nil, fmt.Errorf("panelist %q: %w", pl.Name, err)
			}
		}
	}

	return n, nil
}

// check confirms that every assignment was declared and no slot overflows.
func check(r *roster.Roster, assigned []int, seats int) error {
	load := make([]int, len(r.Slots))
	for p, slot := range assigned {
		if slot == roster.Unassigned {
			continue
		}
		declared := false
		for _, s := range r.Panelists[p].Available {
			if s == slot {
				declared = true
				break
			}
		}
		if !declared {
			return fmt.Errorf("panelist %q in undeclared slot %d: %w", r.Panelists[p].Name, slot, ErrInconsistent)
		}
		if load[slot]++; load[slot] > seats {
			return fmt.Errorf("slot %q over capacity %d: %w", r.Slots[slot], seats, ErrInconsistent)
		}
	}

	return nil
}
