package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SolveStats summarizes one scheduling run.
type SolveStats struct {
	Panelists int
	Slots     int
	Capacity  int
	Matches   int
	Phases    int
	Duration  time.Duration
	Verified  bool
}

// Recorder consumes SolveStats.
type Recorder interface {
	RecordSolve(SolveStats) error
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordSolve(SolveStats) error { return nil }

// PromRecorder records runs in Prometheus metrics.
type PromRecorder struct {
	solves     *prometheus.CounterVec
	matches    prometheus.Gauge
	unassigned prometheus.Gauge
	phases     prometheus.Histogram
	duration   prometheus.Histogram
}

// NewPromRecorder registers the scheduling metrics under namespace on reg.
// If reg is nil, the default registerer is used. If the collectors are
// already registered, the existing ones are reused.
func NewPromRecorder(namespace string, reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &PromRecorder{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total number of scheduling runs",
		}, []string{"verified"}),
		matches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matches",
			Help:      "Panelists assigned by the last run",
		}),
		unassigned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unassigned",
			Help:      "Panelists left without a slot by the last run",
		}),
		phases: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phases",
			Help:      "Augmenting phases per run",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a scheduling run",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	var err error
	if r.solves, err = register(reg, r.solves); err != nil {
		return nil, err
	}
	if r.matches, err = register(reg, r.matches); err != nil {
		return nil, err
	}
	if r.unassigned, err = register(reg, r.unassigned); err != nil {
		return nil, err
	}
	if r.phases, err = register(reg, r.phases); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, r.duration); err != nil {
		return nil, err
	}

	return r, nil
}

// register adds c to reg, or returns the collector already registered in its place.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("metrics: register: %w", err)
}

// RecordSolve updates every collector from s.
func (r *PromRecorder) RecordSolve(s SolveStats) error {
	r.solves.WithLabelValues(strconv.FormatBool(s.Verified)).Inc()
	r.matches.Set(float64(s.Matches))
	r.unassigned.Set(float64(s.Panelists - s.Matches))
	r.phases.Observe(float64(s.Phases))
	r.duration.Observe(s.Duration.Seconds())

	return nil
}

// WriteTextfile writes everything g gathers to path in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}

	return nil
}
