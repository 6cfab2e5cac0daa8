package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates NewGraph was asked for a non-positive order.
	ErrBadVertexCount = errors.New("core: vertex count must be > 0")

	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected edge stored in canonical orientation U <= V.
type Edge struct {
	U, V int
}

// Graph is an undirected simple graph over the vertex set 0..n-1.
//
// mu guards adj and edgeCount. adj[v] holds the neighbors of v as a treeset
// of int, so iteration is ascending.
type Graph struct {
	mu sync.RWMutex

	adj       []*treeset.Set
	edgeCount int
}

// NewGraph creates a graph with vertices 0..n-1 and no edges.
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{adj: make([]*treeset.Set, n)}
	for i := range g.adj {
		g.adj[i] = treeset.NewWithIntComparator()
	}

	return g, nil
}
