// Flat violation oracles: uncovered simple edges and uncovered nets.
// Both are explicit cursor state machines over the container's
// deterministic enumeration — no caching across cover mutations, since
// coverage is consulted at yield time through the live membership func.

package cover

import "github.com/katalvlaran/lvlcover/core"

// edgeOracle yields {u, v} for every edge with neither endpoint covered.
// Exhaustion is exactly the vertex-cover feasibility condition.
type edgeOracle struct {
	edges   []*core.Edge
	covered func(string) bool
	cursor  int
}

func newEdgeOracle(g *core.Graph, covered func(string) bool) *edgeOracle {
	return &edgeOracle{edges: g.Edges(), covered: covered}
}

func (o *edgeOracle) Next() ([]string, bool) {
	for o.cursor < len(o.edges) {
		e := o.edges[o.cursor]
		o.cursor++
		if o.covered(e.U) || o.covered(e.V) {
			continue
		}
		if e.U == e.V {
			// A self-loop constrains a single vertex.
			return []string{e.U}, true
		}

		return []string{e.U, e.V}, true
	}

	return nil, false
}

func (o *edgeOracle) Reset() { o.cursor = 0 }

// netOracle yields the member set of every net with no covered member.
type netOracle struct {
	nets    [][]string // member sets in sorted net-ID order
	covered func(string) bool
	cursor  int
}

func newNetOracle(h *core.Hypergraph, covered func(string) bool) (*netOracle, error) {
	ids := h.Nets()
	nets := make([][]string, 0, len(ids))
	for _, id := range ids {
		members, err := h.NetMembers(id)
		if err != nil {
			return nil, err
		}
		nets = append(nets, members)
	}

	return &netOracle{nets: nets, covered: covered}, nil
}

func (o *netOracle) Next() ([]string, bool) {
scan:
	for o.cursor < len(o.nets) {
		members := o.nets[o.cursor]
		o.cursor++
		for _, m := range members {
			if o.covered(m) {
				continue scan
			}
		}
		out := make([]string, len(members))
		copy(out, members)

		return out, true
	}

	return nil, false
}

func (o *netOracle) Reset() { o.cursor = 0 }
