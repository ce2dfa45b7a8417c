// SPDX-License-Identifier: MIT
// Package: lvlcover/builder
//
// builder.go — the BuildGraph orchestrator and all topology factories.
//
// Every factory returns a Constructor closure that MUST:
//   - Validate parameter domain early (fail fast, no partial work).
//   - Add vertices via cfg.idFn in ascending index order.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcover/core"
)

// Minimum vertex counts per shape (no magic numbers).
const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. The first constructor error is wrapped and returned; no partial
// cleanup is attempted by design.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Path builds a simple path P_n: 0—1—…—(n-1). n ≥ 1; n == 1 is a lone
// vertex. Edges emitted in ascending i → i+1 order.
// Complexity: O(n)
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Path: %w", err)
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n: 0—1—…—(n-1)—0. n ≥ 3.
// Edges emitted i → (i+1) mod n for ascending i.
// Complexity: O(n)
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
			}
		}

		return nil
	}
}

// Complete builds the complete simple graph K_n. n ≥ 1.
// Edges emitted in ascending (i, j), i < j order.
// Complexity: O(n²)
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Complete: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}

// Star builds a star S_n: center 0 joined to leaves 1…n-1. n ≥ 2.
// Complexity: O(n)
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(0), cfg.idFn(i)); err != nil {
				return fmt.Errorf("Star: AddEdge(0,%d): %w", i, err)
			}
		}

		return nil
	}
}

// Wheel builds a wheel W_n: cycle 1…n-1 plus hub 0 joined to every rim
// vertex. n ≥ 4.
// Complexity: O(n)
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, n); err != nil {
			return fmt.Errorf("Wheel: %w", err)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u := cfg.idFn(1 + i)
			v := cfg.idFn(1 + (i+1)%rim)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("Wheel: rim AddEdge(%s,%s): %w", u, v, err)
			}
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(0), cfg.idFn(i)); err != nil {
				return fmt.Errorf("Wheel: spoke AddEdge(0,%d): %w", i, err)
			}
		}

		return nil
	}
}

// Shifted applies c with all vertex indices offset, so disjoint copies of
// shapes can be composed into one graph:
//
//	BuildGraph(nil, nil, Cycle(3), Shifted(3, Cycle(3)))
//
// builds two vertex-disjoint triangles 0-1-2 and 3-4-5.
func Shifted(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		if offset < 0 {
			return fmt.Errorf("Shifted: negative offset %d: %w", offset, ErrConstructFailed)
		}
		inner := cfg
		base := cfg.idFn
		inner.idFn = func(i int) string { return base(i + offset) }

		return c(g, inner)
	}
}

// addVertices inserts vertices 0…n-1 through cfg.idFn.
func addVertices(g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return fmt.Errorf("AddVertex(%d): %w", i, err)
		}
	}

	return nil
}
