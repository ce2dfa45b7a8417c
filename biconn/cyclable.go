// The structural filter: which edges can lie on a cycle at all.
//
// An edge is cyclable iff it appears in some chain of a biconnected
// component with ≥3 vertices, or joins a parallel pair (a 2-cycle).
// Bridges, tree regions and self-loops are excluded, so cycle oracles
// can skip them without traversing.

package biconn

import "github.com/katalvlaran/lvlcover/core"

// minCycleComponent is the smallest biconnected component that can hold
// a simple cycle of distinct vertices.
const minCycleComponent = 3

// CyclableEdges computes the cyclable-edge mask of g once, before any
// oracle runs. The mask is read-only afterwards and must be recomputed
// if the graph changes. A forest yields an empty set.
// Complexity: O(V + E)
func CyclableEdges(g *core.Graph) (PairSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	set := NewPairSet()

	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	for _, comp := range comps {
		if len(comp) < minCycleComponent {
			continue
		}
		allowed := make(map[string]struct{}, len(comp))
		for _, id := range comp {
			allowed[id] = struct{}{}
		}
		chains, err := chainsWithin(g, allowed)
		if err != nil {
			return nil, err
		}
		for _, ch := range chains {
			for _, pair := range ch {
				set.Add(pair[0], pair[1])
			}
		}
	}

	// Parallel pairs close 2-cycles even though their biconnected
	// component has only two vertices.
	first := make(map[pairKey]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.U == e.V {
			continue // self-loops are never cyclable
		}
		k := keyOf(e.U, e.V)
		if _, dup := first[k]; dup {
			set.Add(e.U, e.V)
			continue
		}
		first[k] = struct{}{}
	}

	return set, nil
}
