package hopcroftkarp

import "errors"

// Sentinel errors reported by Matching.Validate.
var (
	// ErrAsymmetricPair indicates pair[pair[v]] != v for some matched v.
	ErrAsymmetricPair = errors.New("hopcroftkarp: asymmetric pairing")

	// ErrNotAdjacent indicates a vertex is paired with a non-neighbor.
	ErrNotAdjacent = errors.New("hopcroftkarp: paired vertices are not adjacent")
)

// PhaseStats describes one finished phase.
type PhaseStats struct {
	// Phase is the 1-based phase number.
	Phase int

	// ShortestPath is dist[Nil] after layering: the panelist-layer length of
	// the shortest augmenting path found in this phase.
	ShortestPath int

	// Augmented is the number of augmenting paths applied in this phase.
	Augmented int
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the hooks Solve honors.
type Options struct {
	// OnPhase is called after every phase that found an augmenting path.
	OnPhase func(PhaseStats)
}

// DefaultOptions returns Options with a no-op OnPhase hook.
func DefaultOptions() Options {
	return Options{
		OnPhase: func(PhaseStats) {},
	}
}

// WithOnPhase registers a per-phase callback. A nil fn is ignored.
func WithOnPhase(fn func(PhaseStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}
