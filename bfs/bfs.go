package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphcrypto/core"
)

// BFS runs breadth-first search on g from start.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, or any error returned by the
// OnVisit hook (wrapped).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if start < 0 || start >= g.VertexCount() {
		return nil, ErrStartVertexNotFound
	}

	return walk(g.Adjacency(), start, o)
}

// ShortestPaths runs an unrestricted BFS over an adjacency snapshot such as
// core.Graph.Adjacency(). Neighbor lists must be ascending for Preds to be
// ascending. start must be a valid index.
func ShortestPaths(adj [][]int, start int) *Result {
	res, _ := walk(adj, start, DefaultOptions())
	return res
}

func walk(adj [][]int, start int, o Options) (*Result, error) {
	n := len(adj)
	res := &Result{
		Source: start,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Sigma:  make([]float64, n),
		Preds:  make([][]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}
	res.Depth[start] = 0
	res.Sigma[start] = 1

	queue := make([]int, 0, n)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		du := res.Depth[u]
		res.Order = append(res.Order, u)
		if err := o.OnVisit(u, du); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit(%d): %w", u, err)
		}
		for _, v := range adj[u] {
			if res.Depth[v] < 0 {
				res.Depth[v] = du + 1
				queue = append(queue, v)
			}
			if res.Depth[v] == du+1 {
				res.Sigma[v] += res.Sigma[u]
				res.Preds[v] = append(res.Preds[v], u)
			}
		}
	}

	return res, nil
}

// Eccentricity returns the greatest hop distance from v to any vertex of g.
// ErrDisconnected is returned if some vertex is unreachable from v.
func Eccentricity(g *core.Graph, v int) (int, error) {
	far := 0
	res, err := BFS(g, v, WithOnVisit(func(_, depth int) error {
		if depth > far {
			far = depth
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}
	for u := range res.Depth {
		if !res.Reached(u) {
			return 0, fmt.Errorf("bfs: vertex %d from %d: %w", u, v, ErrDisconnected)
		}
	}

	return far, nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex. Isolated vertices form singleton components.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := g.Adjacency()
	seen := make([]bool, len(adj))
	var comps [][]int
	for s := range adj {
		if seen[s] {
			continue
		}
		comp := []int{s}
		seen[s] = true
		for head := 0; head < len(comp); head++ {
			for _, v := range adj[comp[head]] {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
