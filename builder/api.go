// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Determinism: same inputs, options and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcrypto/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early, return sentinel errors and
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-vertex core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial graph is returned.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
