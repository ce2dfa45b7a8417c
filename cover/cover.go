// Public entry points: one per covering problem, all funneling into the
// shared primal-dual engine. Validation happens synchronously at the
// call boundary; an empty instance is a trivial success, never an error.

package cover

import (
	"github.com/katalvlaran/lvlcover/biconn"
	"github.com/katalvlaran/lvlcover/core"
)

// MinVertexCover approximates a minimum-weight vertex cover of g:
// a vertex set touching every edge. 2-approximation, minimal after
// reverse-delete. A nil weight map means uniform weight 1.
func MinVertexCover(g *core.Graph, weight map[string]float64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, soln, err := prepare(weight, g.HasVertex, opts)
	if err != nil {
		return nil, err
	}

	return run(o, newEdgeOracle(g, soln.has), weight, soln, g.VertexCount())
}

// MinHyperVertexCover approximates a minimum-weight vertex cover of the
// hypergraph h: a vertex set touching every net.
func MinHyperVertexCover(h *core.Hypergraph, weight map[string]float64, opts ...Option) (*Result, error) {
	if h == nil {
		return nil, ErrHypergraphNil
	}
	o, soln, err := prepare(weight, h.HasVertex, opts)
	if err != nil {
		return nil, err
	}
	oracle, err := newNetOracle(h, soln.has)
	if err != nil {
		return nil, err
	}

	return run(o, oracle, weight, soln, h.VertexCount())
}

// MinCycleCover approximates a minimum-weight cycle cover of g: a vertex
// set meeting every cycle (a feedback vertex set). Traversal is pruned
// to cyclable edges by the structural filter.
func MinCycleCover(g *core.Graph, weight map[string]float64, opts ...Option) (*Result, error) {
	return cycleCover(g, weight, opts, false)
}

// MinOddCycleCover approximates a minimum-weight odd-cycle cover of g:
// a vertex set meeting every odd-length cycle (its removal leaves the
// graph bipartite).
func MinOddCycleCover(g *core.Graph, weight map[string]float64, opts ...Option) (*Result, error) {
	return cycleCover(g, weight, opts, true)
}

// cycleCover is the shared body of the two cycle entry points.
func cycleCover(g *core.Graph, weight map[string]float64, opts []Option, odd bool) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, soln, err := prepare(weight, g.HasVertex, opts)
	if err != nil {
		return nil, err
	}

	filter := o.Filter
	if filter == nil {
		filter, err = biconn.CyclableEdges(g)
		if err != nil {
			return nil, err
		}
	}
	oracle, err := newCycleOracle(g, filter, soln.has, odd)
	if err != nil {
		return nil, err
	}

	return run(o, oracle, weight, soln, g.VertexCount())
}

// PDCover runs the primal-dual engine against a caller-supplied oracle —
// the generic form the four entry points specialize. build receives the
// live cover-membership func and must return an Oracle that skips
// violations intersecting it (the oracle contract). bound caps greedy
// iterations and should be the size of the vertex universe; a compliant
// oracle exhausts within it. Seed vertices are accepted verbatim (the
// caller owns the universe).
func PDCover(build func(covered func(string) bool) Oracle, weight map[string]float64, bound int, opts ...Option) (*Result, error) {
	if build == nil {
		return nil, ErrOracleNil
	}
	o, soln, err := prepare(weight, func(string) bool { return true }, opts)
	if err != nil {
		return nil, err
	}
	oracle := build(soln.has)
	if oracle == nil {
		return nil, ErrOracleNil
	}

	return run(o, oracle, weight, soln, bound)
}

// prepare resolves options, validates weights and builds the seeded
// solution set — the shared validation front door.
func prepare(weight map[string]float64, exists func(string) bool, opts []Option) (Options, *coverSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, nil, o.err
	}
	if err := validateWeights(weight); err != nil {
		return o, nil, err
	}
	soln, err := newCoverSet(o.Seed, exists)
	if err != nil {
		return o, nil, err
	}

	return o, soln, nil
}

// run executes the greedy phase, optionally reduces, and prices the
// final cover.
func run(o Options, oracle Oracle, weight map[string]float64, soln *coverSet, bound int) (*Result, error) {
	dual, err := pdCover(o.Ctx, oracle, weight, soln, bound, o.OnSelect)
	if err != nil {
		return nil, err
	}
	if !o.Raw {
		if err = reduce(o.Ctx, oracle, soln); err != nil {
			return nil, err
		}
	}

	res := &Result{Cover: soln.ids(), Dual: dual}
	for _, id := range res.Cover {
		res.Cost += weightOf(weight, id)
	}

	return res, nil
}
