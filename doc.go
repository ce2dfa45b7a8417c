// Package lvlcover is an in-memory toolkit for weighted combinatorial
// covering problems on graphs and hypergraphs — vertex cover, hyperedge
// (netlist) cover, cycle cover and odd-cycle cover — solved by one shared
// primal-dual approximation engine.
//
// 🚀 What is lvlcover?
//
//	A compact, deterministic library that brings together:
//	  • Core primitives: undirected graphs & hypergraphs, mutate safely under locks
//	  • Structural analysis: biconnected components & chain (ear) decomposition
//	  • Violation oracles: edge, hyperedge, cycle and odd-cycle detectors
//	  • The solver: greedy primal-dual selection with dual-cost bookkeeping
//	  • Reverse-delete post-processing for guaranteed-minimal covers
//
// ✨ Why choose lvlcover?
//
//   - Deterministic — a fixed total order over vertex IDs makes every run reproducible
//   - Rock-solid guarantees — weak duality (dual ≤ primal) on every solve
//   - Pure Go — no cgo, no hidden deps
//   - Extensible — inject your own structural filter, trace the loop with hooks
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — fundamental Graph & Hypergraph types, thread-safe primitives
//	biconn/  — biconnected components, chain decomposition, cyclable-edge filter
//	cover/   — violation oracles, the primal-dual solver, public entry points
//	builder/ — deterministic graph fixtures (paths, cycles, cliques, …)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │        min cycle cover of the square: any single vertex.
//	    3───2
//
// Dive into cover/doc.go for the algorithm walkthrough and the
// approximation guarantees each entry point carries.
//
//	go get github.com/katalvlaran/lvlcover
package lvlcover
