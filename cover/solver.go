// The shared primal-dual engine: greedy selection with dual-gap
// bookkeeping, followed by the reverse-delete minimality pass.

package cover

import (
	"context"
	"fmt"
)

// coverSet is the live solution: an ordered insertion sequence plus an
// O(1)-membership set view. Seed vertices are members but never appear in
// the greedy order, so reverse-delete cannot evict them.
type coverSet struct {
	seed    []string            // caller-provided partial cover, deduplicated
	order   []string            // greedy additions, insertion order
	members map[string]struct{} // union of seed and order
}

// newCoverSet builds the initial solution from a seed. exists validates
// each seed vertex against the problem's vertex universe.
func newCoverSet(seed []string, exists func(string) bool) (*coverSet, error) {
	c := &coverSet{members: make(map[string]struct{}, len(seed))}
	for _, id := range seed {
		if !exists(id) {
			return nil, fmt.Errorf("%w: seed vertex %q not in graph", ErrOptionViolation, id)
		}
		if _, dup := c.members[id]; dup {
			continue
		}
		c.members[id] = struct{}{}
		c.seed = append(c.seed, id)
	}

	return c, nil
}

// has reports membership in O(1).
func (c *coverSet) has(id string) bool {
	_, ok := c.members[id]

	return ok
}

// add appends a greedy selection, preserving insertion order.
func (c *coverSet) add(id string) {
	c.members[id] = struct{}{}
	c.order = append(c.order, id)
}

// evict removes membership only; restore re-adds it. Both leave the
// insertion order untouched (reverse-delete bookkeeping).
func (c *coverSet) evict(id string)   { delete(c.members, id) }
func (c *coverSet) restore(id string) { c.members[id] = struct{}{} }

// dropOrder removes the i-th greedy addition after a permanent eviction.
func (c *coverSet) dropOrder(i int) {
	c.order = append(c.order[:i], c.order[i+1:]...)
}

// ids returns seed followed by surviving greedy additions.
func (c *coverSet) ids() []string {
	out := make([]string, 0, len(c.seed)+len(c.order))
	out = append(out, c.seed...)
	out = append(out, c.order...)

	return out
}

// pdCover runs the greedy primal-dual phase until the oracle is exhausted
// and returns the accumulated dual cost.
//
// Per violation S: select argmin gap over S — ties break on smaller
// weight, then smaller vertex ID (the fixed, documented total order) —
// append it to soln, charge δ = gap[v*] to the dual and subtract δ from
// every gap in S. Gaps never go negative since δ is the minimum.
//
// bound caps iterations at the size of the vertex universe; a compliant
// oracle exhausts within it because every yielded violation is disjoint
// from the cover, so each iteration grows the cover by one vertex.
func pdCover(ctx context.Context, oracle Oracle, weight map[string]float64, soln *coverSet, bound int, onSelect func(string, float64)) (float64, error) {
	gap := make(map[string]float64, bound)
	gapOf := func(id string) float64 {
		if g, ok := gap[id]; ok {
			return g
		}
		g := weightOf(weight, id)
		gap[id] = g

		return g
	}

	dual := 0.0
	for iter := 0; ; iter++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		violation, ok := oracle.Next()
		if !ok {
			return dual, nil
		}
		if len(violation) == 0 {
			return 0, fmt.Errorf("%w: empty violation", ErrOracleInconsistent)
		}
		if iter >= bound {
			return 0, fmt.Errorf("%w: still violated after %d selections", ErrOracleInconsistent, bound)
		}

		best, bestGap := "", 0.0
		for _, v := range violation {
			if soln.has(v) {
				return 0, fmt.Errorf("%w: violation %v intersects cover at %q", ErrOracleInconsistent, violation, v)
			}
			g := gapOf(v)
			if best == "" || g < bestGap ||
				(g == bestGap && lessVertex(weight, v, best)) {
				best, bestGap = v, g
			}
		}

		soln.add(best)
		dual += bestGap
		for _, v := range violation {
			gap[v] -= bestGap
		}
		onSelect(best, bestGap)
	}
}

// lessVertex is the deterministic tie-break for equal gaps:
// cheaper vertex first, then smaller ID.
func lessVertex(weight map[string]float64, a, b string) bool {
	wa, wb := weightOf(weight, a), weightOf(weight, b)
	if wa != wb {
		return wa < wb
	}

	return a < b
}

// reduce is the reverse-delete pass: walk greedy additions newest-first,
// tentatively evict each, and keep the eviction only when the oracle
// stays exhausted. Seed vertices are not candidates. The result is a
// minimal cover — no proper subset still covers — though not necessarily
// a minimum one (eviction order dependence is accepted).
func reduce(ctx context.Context, oracle Oracle, soln *coverSet) error {
	for i := len(soln.order) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		v := soln.order[i]
		soln.evict(v)
		oracle.Reset()
		if _, violated := oracle.Next(); violated {
			soln.restore(v)
			continue
		}
		soln.dropOrder(i)
	}

	return nil
}
