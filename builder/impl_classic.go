// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_classic.go - closed-form reference shapes over vertices 0..n-1.
//
// Contract:
//   - Each constructor uses the first n vertices of g; g must have at least n.
//   - Edges are emitted in ascending index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphcrypto/core"
)

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"

	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2
)

// Cycle builds the simple cycle C_n: i -> (i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkOrder(methodCycle, g, n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(i, (i+1)%n); err != nil {
				return builderErrorf(methodCycle, fmt.Sprintf("AddEdge(%d,%d)", i, (i+1)%n), err)
			}
		}

		return nil
	}
}

// Path builds the simple path P_n: i -> i+1.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkOrder(methodPath, g, n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(i, i+1); err != nil {
				return builderErrorf(methodPath, fmt.Sprintf("AddEdge(%d,%d)", i, i+1), err)
			}
		}

		return nil
	}
}

// Star builds a star with center 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkOrder(methodStar, g, n, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(0, i); err != nil {
				return builderErrorf(methodStar, fmt.Sprintf("AddEdge(0,%d)", i), err)
			}
		}

		return nil
	}
}

// Complete builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkOrder(methodComplete, g, n, 1); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(i, j); err != nil {
					return builderErrorf(methodComplete, fmt.Sprintf("AddEdge(%d,%d)", i, j), err)
				}
			}
		}

		return nil
	}
}

func checkOrder(method string, g *core.Graph, n, lo int) error {
	if n < lo || n > g.VertexCount() {
		return builderErrorf(method, fmt.Sprintf("n=%d", n), ErrTooFewVertices)
	}

	return nil
}
