// Chain (ear) decomposition after Schmidt (2013): root a DFS tree, then
// walk every back edge from its ancestor endpoint down and back up the
// tree until previously-walked territory is reached. Each non-bridge
// edge of a 2-edge-connected piece lands in exactly one chain; bridges
// land in none.

package biconn

import (
	"fmt"

	"github.com/katalvlaran/lvlcover/core"
)

// Chains returns the chain decomposition of g.
// The first chain rooted in each 2-edge-connected piece is a cycle;
// later chains are ears. Deterministic given core's sorted orders.
// Complexity: O(V + E)
func Chains(g *core.Graph) ([]Chain, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return chainsWithin(g, nil)
}

// chainsWithin runs the decomposition over the subgraph induced by the
// allowed vertex set (nil means the whole graph). The restriction is how
// the structural filter scopes chains to one biconnected component.
func chainsWithin(g *core.Graph, allowed map[string]struct{}) ([]Chain, error) {
	permit := func(id string) bool {
		if allowed == nil {
			return true
		}
		_, ok := allowed[id]

		return ok
	}

	num := make(map[string]int)       // DFS preorder number, 1-based
	parent := make(map[string]string) // DFS tree parent
	var order []string                // vertices in preorder
	back := make(map[string][]string) // ancestor → back-edge descendants
	seen := make(map[string]struct{}) // edge IDs classified non-tree
	counter := 0

	var visit func(v, viaEdge string) error
	visit = func(v, viaEdge string) error {
		counter++
		num[v] = counter
		order = append(order, v)

		edges, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("biconn: Neighbors(%q): %w", v, err)
		}
		for _, e := range edges {
			if e.U == e.V {
				continue // self-loops join no chain
			}
			if e.ID == viaEdge {
				continue
			}
			w, _ := e.Other(v)
			if !permit(w) {
				continue
			}
			if num[w] == 0 {
				parent[w] = v
				if err = visit(w, e.ID); err != nil {
					return err
				}
				continue
			}
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			// Non-tree edges connect ancestor and descendant; file the
			// edge under the endpoint discovered first.
			if num[w] < num[v] {
				back[w] = append(back[w], v)
			} else {
				back[v] = append(back[v], w)
			}
		}

		return nil
	}

	for _, v := range g.Vertices() {
		if permit(v) && num[v] == 0 {
			if err := visit(v, ""); err != nil {
				return nil, err
			}
		}
	}

	// Second pass: walk each back edge from its ancestor, then climb
	// parents until previously-walked territory (Schmidt's marking).
	walked := make(map[string]struct{}, len(order))
	var chains []Chain
	for _, u := range order {
		walked[u] = struct{}{}
		for _, v := range back[u] {
			var ch Chain
			x, y := u, v
			for {
				ch = append(ch, [2]string{x, y})
				if _, ok := walked[y]; ok {
					break
				}
				walked[y] = struct{}{}
				x, y = y, parent[y]
			}
			chains = append(chains, ch)
		}
	}

	return chains, nil
}
