// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, visit order, and, for every vertex,
// the number of distinct shortest paths from the source together with the
// list of shortest-path predecessors.
//
// Those last two outputs are exactly what Brandes' betweenness algorithm
// consumes, so the topology package runs one BFS per source vertex through
// ShortestPaths on a pre-taken adjacency snapshot.
//
// Components partitions the graph into connected components, and
// Eccentricity gives the farthest hop distance from one vertex, which the
// root package folds into a diameter and radius.
package bfs
