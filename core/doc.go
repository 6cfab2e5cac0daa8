// Package core provides the thread-safe, in-memory undirected Graph that the
// topology pipeline builds from a seed and then only reads.
//
// Vertices are the integers 0..n-1 and are created up front by NewGraph, so a
// graph over byte values has exactly 256 nodes even when some of them never
// receive an edge. Edges are simple: no parallel edges and no
// self-loops.
//
// Why use core.Graph?
//
//   - Deterministic iteration: NeighborIDs and Edges always return ascending
//     order, so every feature derived from the graph is reproducible.
//   - Idempotent AddEdge: adding an existing edge is a no-op that reports
//     added == false, which is what a hash-driven construction needs when the
//     same pair appears twice.
//   - Safe concurrent reads: all methods take a sync.RWMutex.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)
//	AddEdge(u, v int) (added bool, err error)      // O(log d)
//	HasEdge(u, v int) bool                          // O(log d)
//	Degree(v int) (int, error)                      // O(1)
//	NeighborIDs(v int) ([]int, error)               // O(d)
//	Edges() []Edge                                  // O(E log E)
//	Adjacency() [][]int                             // O(V + E)
//	VertexCount(), EdgeCount(), Density(), Stats()
//
// Neighbor sets are gods treesets keyed by vertex ID, which keeps them sorted
// without a separate sort per query.
package core
