// Package cover options, result and error definitions.
package cover

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for covering solves.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cover: graph is nil")

	// ErrHypergraphNil is returned if a nil hypergraph pointer is passed.
	ErrHypergraphNil = errors.New("cover: hypergraph is nil")

	// ErrOracleNil is returned if a nil Oracle is passed to PDCover.
	ErrOracleNil = errors.New("cover: oracle is nil")

	// ErrNegativeWeight is returned when any vertex weight is < 0.
	// Nonnegative weights are required for the dual-gap invariant.
	ErrNegativeWeight = errors.New("cover: negative vertex weight")

	// ErrOracleInconsistent signals a broken oracle: it yielded an empty
	// violation, a violation intersecting the current cover, or kept
	// yielding past the |V| iteration bound. Fatal, never retried.
	ErrOracleInconsistent = errors.New("cover: violation oracle inconsistent")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. a seed vertex absent from the graph).
	ErrOptionViolation = errors.New("cover: invalid option supplied")
)

// Oracle produces a lazy sequence of violations: vertex sets whose
// constraint is not yet satisfied by the current cover.
//
// Contract:
//   - Next returns the next violation and true, or (nil, false) once no
//     violation remains against the live cover.
//   - Yielded sets must be disjoint from the live cover; results must not
//     be cached across cover mutations.
//   - Reset rewinds the sequence for a fresh pass (used by reverse-delete).
//   - Iteration must be deterministic given the fixed vertex order.
type Oracle interface {
	Next() ([]string, bool)
	Reset()
}

// EdgeFilter is the injected structural capability consulted by the cycle
// oracles: Has reports whether some edge joining u and v can lie on a
// cycle. biconn.PairSet satisfies it; tests may inject a mock.
type EdgeFilter interface {
	Has(u, v string) bool
}

// Result is the outcome of a covering solve.
type Result struct {
	// Cover holds the selected vertices in insertion order: seed vertices
	// first, then greedy selections that survived reverse-delete.
	Cover []string

	// Cost is the total weight of Cover.
	Cost float64

	// Dual is the dual lower bound accumulated by the greedy phase;
	// Dual ≤ Cost always (weak duality).
	Dual float64
}

// Option configures a covering solve via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a solve.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per solver
	// iteration and per reverse-delete probe.
	Ctx context.Context

	// Seed pre-loads a partial cover (incremental re-solving). Seed
	// vertices satisfy violations but are never evicted by reverse-delete.
	Seed []string

	// Raw skips the reverse-delete pass: cheaper, result feasible but
	// possibly non-minimal.
	Raw bool

	// OnSelect is called after each greedy selection with the chosen
	// vertex and the dual increment δ charged for it.
	OnSelect func(id string, delta float64)

	// Filter overrides the structural filter used by the cycle oracles.
	// Nil means compute biconn.CyclableEdges on the input graph.
	Filter EdgeFilter

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no seed, full reduction, no-op hook
//   - structural filter computed from the graph.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Seed:     nil,
		Raw:      false,
		OnSelect: func(string, float64) {},
		Filter:   nil,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed pre-loads the given vertices as an initial partial cover.
// Every seed vertex must exist in the graph, else ErrOptionViolation.
func WithSeed(ids ...string) Option {
	return func(o *Options) {
		o.Seed = append(o.Seed, ids...)
	}
}

// WithoutReduction skips the reverse-delete minimality pass.
func WithoutReduction() Option {
	return func(o *Options) {
		o.Raw = true
	}
}

// WithOnSelect registers a hook observing each greedy selection.
func WithOnSelect(fn func(id string, delta float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

// WithEdgeFilter injects a precomputed (or mock) cyclable-edge filter for
// the cycle and odd-cycle covers, bypassing the biconn computation.
func WithEdgeFilter(f EdgeFilter) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: nil EdgeFilter", ErrOptionViolation)

			return
		}
		o.Filter = f
	}
}

// validateWeights rejects negative weights before any solving begins.
func validateWeights(weight map[string]float64) error {
	for id, w := range weight {
		if w < 0 {
			return fmt.Errorf("%w: vertex %q has weight %g", ErrNegativeWeight, id, w)
		}
	}

	return nil
}

// weightOf looks a vertex weight up, defaulting to 1 for absent entries
// (and for a nil map): the unweighted covering convention.
func weightOf(weight map[string]float64, id string) float64 {
	if weight == nil {
		return 1
	}
	if w, ok := weight[id]; ok {
		return w
	}

	return 1
}
