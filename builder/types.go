// SPDX-License-Identifier: MIT
// Package: lvlcover/builder
//
// types.go — sentinel errors, functional options and the resolved
// builder configuration.

package builder

import (
	"errors"
	"strconv"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates an n below the shape's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrConstructFailed indicates a nil or failing constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// BuilderOption configures fixture construction.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index → ID (deterministic).
	idFn func(int) string
}

// decimalID is the default ID scheme: "0", "1", "2", …
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// WithIDFn overrides the vertex ID scheme. A nil fn keeps the default.
func WithIDFn(fn func(int) string) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// newBuilderConfig resolves deterministic defaults, then applies all
// options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: decimalID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
