// Package biconn analyzes the 2-connected structure of an undirected
// core.Graph: biconnected components, chain (ear) decomposition, and the
// cyclable-edge filter built from both.
//
// 🚀 Why does a covering engine need this?
//
//	Cycle and odd-cycle oracles waste most of their traversal budget on
//	bridges and tree-like regions where no cycle can exist. The filter
//	computed here — the set of edges that lie on at least one cycle —
//	prunes that work once per graph:
//	  • Components: Tarjan's edge-stack decomposition into maximal
//	    biconnected components (a bridge is its own 2-vertex component).
//	  • Chains: Schmidt's chain decomposition; every non-bridge edge of a
//	    2-edge-connected piece appears in exactly one chain.
//	  • CyclableEdges: chains of every component with ≥3 vertices, plus
//	    parallel pairs (2-cycles). A forest yields the empty set.
//
// Determinism: DFS roots and neighbor scans follow the sorted orders
// core.Graph guarantees, so the output is reproducible run to run.
//
// Complexity: all three entry points are O(V + E).
package biconn
