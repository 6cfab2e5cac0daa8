// File: methods.go
// Role: Edge insertion and read-only queries.
// Determinism:
//   - NeighborIDs() and Adjacency() rows are ascending.
//   - Edges() is sorted by (U, V) with U <= V.
// Concurrency:
//   - AddEdge under the write lock, everything else under the read lock.

package core

// AddEdge inserts the undirected edge {u, v}. Adding an edge that already
// exists is not an error: the graph is unchanged and added is false.
//
// Errors:
//   - ErrVertexNotFound if u or v is outside 0..n-1.
//   - ErrLoopNotAllowed if u == v.
//
// Complexity: O(log d).
func (g *Graph) AddEdge(u, v int) (added bool, err error) {
	if !g.valid(u) || !g.valid(v) {
		return false, ErrVertexNotFound
	}
	if u == v {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.adj[u].Contains(v) {
		return false, nil
	}
	g.adj[u].Add(v)
	g.adj[v].Add(u)
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether {u, v} is present. Out-of-range IDs yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[u].Contains(v)
}

// Degree returns the number of distinct neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	if !g.valid(v) {
		return 0, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v].Size(), nil
}

// NeighborIDs returns the neighbors of v in ascending order.
// The returned slice is owned by the caller.
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if !g.valid(v) {
		return nil, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return neighborsOf(g.adj[v]), nil
}

// Adjacency returns a snapshot of all neighbor lists, indexed by vertex.
// Algorithms that walk the graph many times (Brandes, triangle counting)
// take one snapshot instead of locking per lookup.
func (g *Graph) Adjacency() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adj))
	for v, set := range g.adj {
		out[v] = neighborsOf(set)
	}

	return out
}

// Edges returns every edge once, with U <= V, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// u ascends in the outer loop and each treeset iterates ascending.
	out := make([]Edge, 0, g.edgeCount)
	for u, set := range g.adj {
		it := set.Iterator()
		for it.Next() {
			if v := it.Value().(int); v >= u {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	return out
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Density returns 2E / (n(n-1)), or 0 for a single-vertex graph.
func (g *Graph) Density() float64 {
	n := g.VertexCount()
	if n < 2 {
		return 0
	}

	return 2 * float64(g.EdgeCount()) / float64(n*(n-1))
}

// Stats summarises the graph shape.
type Stats struct {
	Vertices  int
	Edges     int
	Density   float64
	MinDegree int
	MaxDegree int
	Isolated  int // vertices with degree 0
}

// Stats returns a snapshot summary. Complexity: O(n).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Vertices: len(g.adj), Edges: g.edgeCount, MinDegree: -1}
	for _, set := range g.adj {
		d := set.Size()
		if d == 0 {
			s.Isolated++
		}
		if s.MinDegree < 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if n := len(g.adj); n > 1 {
		s.Density = 2 * float64(g.edgeCount) / float64(n*(n-1))
	}

	return s
}

func (g *Graph) valid(v int) bool { return v >= 0 && v < len(g.adj) }

func neighborsOf(set interface{ Values() []interface{} }) []int {
	vals := set.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}

	return out
}
