// Package cover solves weighted combinatorial covering problems with one
// shared primal-dual approximation engine: minimum vertex cover, minimum
// hyperedge (netlist) cover, minimum cycle cover and minimum odd-cycle
// cover.
//
// 🚀 How does it work?
//
//	Every problem is reduced to a violation Oracle — a lazy sequence of
//	vertex sets whose constraint is not yet satisfied by the current
//	cover. The engine then runs the classic primal-dual greedy loop:
//	  1. ask the oracle for the next violation S,
//	  2. pick the vertex of S with the smallest residual gap,
//	  3. add it to the cover, charge its gap δ to the dual, and
//	     shrink every gap in S by δ,
//	  4. repeat until the oracle is exhausted (the cover is feasible).
//	A reverse-delete pass then evicts redundant vertices, newest first,
//	so the returned cover is minimal (no proper subset still covers).
//
// ✨ Guarantees:
//
//   - Feasibility — no violation survives against the returned cover
//   - Weak duality — Result.Dual ≤ Result.Cost on every solve
//   - Minimality — unless WithoutReduction() requests the raw greedy set
//   - Determinism — selection ties break on (weight, vertex ID), and all
//     traversal follows core's sorted orders
//
// The cycle oracles never wander into tree-like regions: they consult an
// EdgeFilter (by default biconn.CyclableEdges) that prunes every edge not
// lying on any cycle, the dominant saving on sparse graphs.
//
// ⚙️ Usage:
//
//	g := core.NewGraph()
//	g.AddEdge("0", "1")
//	g.AddEdge("1", "2")
//	g.AddEdge("2", "0")
//
//	res, err := cover.MinVertexCover(g, map[string]float64{"0": 1, "1": 2, "2": 1})
//	// res.Cover holds the chosen vertices in insertion order.
//
// Performance:
//
//   - Edge/hyperedge oracles: O(E) per solve phase
//   - Cycle oracles: O(V·(V+E)) worst case (one BFS sweep per selection)
//   - Reverse-delete: one oracle exhaustion per selected vertex
//
// See example_test.go for runnable scenarios.
package cover
