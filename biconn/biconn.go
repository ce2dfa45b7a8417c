// Biconnected components via Tarjan's edge-stack algorithm
// ("Depth-first search and linear graph algorithms", SIAM J. Comput. 1972).
//
// A component is emitted as its vertex set. Bridges form 2-vertex
// components; isolated vertices form no component at all. Self-loops
// never participate (a loop is not 2-connected structure).

package biconn

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlcover/core"
)

// stackedEdge records an edge together with the endpoint it was pushed
// from, so component extraction can compare DFS numbers of push origins.
type stackedEdge struct {
	from string
	e    *core.Edge
}

// Components returns the biconnected components of g as sorted vertex
// sets, themselves sorted lexicographically for deterministic output.
// Complexity: O(V + E)
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	number := make(map[string]int, len(verts))
	lowpt := make(map[string]int, len(verts))
	var stack []stackedEdge
	var comps [][]string
	counter := 0

	var visit func(v, viaEdge string) error
	visit = func(v, viaEdge string) error {
		counter++
		number[v] = counter
		lowpt[v] = counter

		edges, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("biconn: Neighbors(%q): %w", v, err)
		}
		for _, e := range edges {
			if e.U == e.V {
				continue // self-loop: no 2-connected structure
			}
			if e.ID == viaEdge {
				continue // the tree edge we arrived by
			}
			w, _ := e.Other(v)
			switch {
			case number[w] == 0:
				// Tree edge: push, recurse, then test for a cut at v.
				stack = append(stack, stackedEdge{from: v, e: e})
				if err = visit(w, e.ID); err != nil {
					return err
				}
				if lowpt[w] < lowpt[v] {
					lowpt[v] = lowpt[w]
				}
				if lowpt[w] >= number[v] {
					// v separates w's subtree: everything pushed since
					// (v,w) is one biconnected component.
					comps = append(comps, popComponent(&stack, number, number[w]))
				}
			case number[w] < number[v]:
				// Back edge to an ancestor; pushed from the descendant
				// side only, so each edge enters the stack once.
				stack = append(stack, stackedEdge{from: v, e: e})
				if number[w] < lowpt[v] {
					lowpt[v] = number[w]
				}
			}
		}

		return nil
	}

	for _, v := range verts {
		if number[v] == 0 {
			if err := visit(v, ""); err != nil {
				return nil, err
			}
		}
	}

	sortComponents(comps)

	return comps, nil
}

// popComponent pops the current component off the edge stack: every edge
// pushed from a vertex numbered ≥ childNum, plus the tree edge below it.
// Returns the component's sorted vertex set.
func popComponent(stack *[]stackedEdge, number map[string]int, childNum int) []string {
	members := make(map[string]struct{})
	take := func(se stackedEdge) {
		members[se.e.U] = struct{}{}
		members[se.e.V] = struct{}{}
	}

	s := *stack
	top := len(s) - 1
	for number[s[top].from] >= childNum {
		take(s[top])
		top--
	}
	take(s[top]) // the tree edge (v, w) itself
	*stack = s[:top]

	out := make([]string, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// sortComponents orders component vertex sets lexicographically.
func sortComponents(comps [][]string) {
	sort.Slice(comps, func(i, j int) bool {
		a, b := comps[i], comps[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})
}
