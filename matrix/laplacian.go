// SPDX-License-Identifier: MIT
// Package: matrix
//
// laplacian.go - combinatorial Laplacian of an undirected simple graph.

package matrix

import "github.com/katalvlaran/graphcrypto/core"

// Laplacian returns L = D - A for g: L[i,i] = deg(i), L[i,j] = -1 for each
// edge {i,j}. The result is symmetric with zero row sums.
//
// Complexity: O(n² + E).
func Laplacian(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opLaplacian, ErrGraphNil)
	}
	adj := g.Adjacency()
	n := len(adj)
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	for i, nbs := range adj {
		for _, j := range nbs {
			l.data[i*n+j] = -1
			l.data[i*n+i]++
		}
	}

	return l, nil
}
