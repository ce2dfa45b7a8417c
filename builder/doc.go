// SPDX-License-Identifier: MIT
// Package: lvlcover/builder
//
// Package builder assembles deterministic core.Graph fixtures for tests,
// examples and benchmarks: paths, cycles, cliques, stars, wheels, and
// shifted (disjoint-union) compositions of those.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs, options and constructor order ⇒
//     identical graphs. No randomness anywhere — covering solves are
//     deterministic and their fixtures must be too.
//   - Safety: never panic; return sentinel errors from constructors.
package builder
