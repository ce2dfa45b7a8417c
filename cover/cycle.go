// Cycle and odd-cycle violation oracles.
//
// Each Next() re-scans the graph with BFS from every uncovered,
// not-yet-visited vertex in sorted order, walking only edges the
// structural filter admits and only uncovered vertices. The first
// non-tree edge closing a cycle (any parity for the cycle oracle, equal
// depth parity for the odd-cycle oracle) yields the shortest cycle
// through that edge, reconstructed along BFS-tree parent pointers.
// Re-scanning per call is the oracle contract: the cover mutates between
// calls, so cached traversal state would go stale.

package cover

import (
	"fmt"

	"github.com/katalvlaran/lvlcover/core"
)

// bfsRec is one vertex's slot in the transient per-scan BFS bookkeeping:
// tree parent, the edge ID it was discovered through, and tree depth.
type bfsRec struct {
	parent string
	via    string
	depth  int
}

// cycleOracle detects uncovered cycles restricted to cyclable edges.
// odd=true additionally requires equal depth parity on the closing edge
// (an odd cycle); parallel-edge 2-cycles are then rejected by parity.
type cycleOracle struct {
	verts   []string                // sorted, the fixed scan order
	adj     map[string][]*core.Edge // prefetched sorted adjacency
	filter  EdgeFilter
	covered func(string) bool
	odd     bool
}

// newCycleOracle prefetches adjacency once; the graph is read-only for
// the duration of the solve.
func newCycleOracle(g *core.Graph, filter EdgeFilter, covered func(string) bool, odd bool) (*cycleOracle, error) {
	verts := g.Vertices()
	adj := make(map[string][]*core.Edge, len(verts))
	for _, v := range verts {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("cover: Neighbors(%q): %w", v, err)
		}
		adj[v] = edges
	}

	return &cycleOracle{verts: verts, adj: adj, filter: filter, covered: covered, odd: odd}, nil
}

// Next scans for the first qualifying cycle and yields its vertex set.
func (o *cycleOracle) Next() ([]string, bool) {
	visited := make(map[string]struct{}, len(o.verts))
	for _, source := range o.verts {
		if o.covered(source) {
			continue
		}
		if _, done := visited[source]; done {
			continue
		}
		if cyc := o.scanFrom(source, visited); cyc != nil {
			return cyc, true
		}
	}

	return nil, false
}

// Reset is a no-op: every Next already starts from scratch.
func (o *cycleOracle) Reset() {}

// scanFrom runs one BFS tree rooted at source and returns the first
// qualifying cycle, or nil when the component holds none.
func (o *cycleOracle) scanFrom(source string, visited map[string]struct{}) []string {
	info := map[string]bfsRec{source: {parent: source}}
	visited[source] = struct{}{}
	queue := []string{source}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		rec := info[v]

		for _, e := range o.adj[v] {
			if e.U == e.V {
				continue // self-loops close no simple cycle
			}
			w, _ := e.Other(v)
			if o.covered(w) || !o.filter.Has(v, w) {
				continue
			}
			if _, seen := info[w]; !seen {
				info[w] = bfsRec{parent: v, via: e.ID, depth: rec.depth + 1}
				visited[w] = struct{}{}
				queue = append(queue, w)
				continue
			}
			if e.ID == rec.via {
				continue // the tree edge we were discovered through
			}
			// Non-tree edge inside the BFS tree: closes a cycle. A
			// parallel edge to the parent closes a 2-cycle here (the
			// via check above is by edge ID, not by endpoint).
			if o.odd && (rec.depth-info[w].depth)%2 != 0 {
				continue // even cycle: not a violation for odd-cycle cover
			}

			return constructCycle(info, v, w)
		}
	}

	return nil
}

// constructCycle rebuilds the shortest cycle through the non-tree edge
// (u, v): climb the deeper endpoint to the other's depth, then climb
// both in lockstep to their meeting vertex, collecting everything.
func constructCycle(info map[string]bfsRec, u, v string) []string {
	a, b := u, v
	if info[a].depth > info[b].depth {
		a, b = b, a // a is the shallower endpoint
	}

	var cyc []string
	for info[b].depth > info[a].depth {
		cyc = append(cyc, b)
		b = info[b].parent
	}
	for a != b {
		cyc = append(cyc, a, b)
		a = info[a].parent
		b = info[b].parent
	}
	cyc = append(cyc, a) // the meeting vertex, once

	return cyc
}
