package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphcrypto/bfs"
	"github.com/katalvlaran/graphcrypto/core"
	"github.com/katalvlaran/graphcrypto/matrix"
)

// Size is the length of every feature vector and of the topology vector.
const Size = 256

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("topology: graph is nil")

	// ErrFeatureLength reports a feature vector whose length is not Size.
	ErrFeatureLength = errors.New("topology: feature vector length mismatch")
)

// Features holds the four per-vertex feature vectors of a graph.
type Features struct {
	Degree      []float64
	Clustering  []float64
	Betweenness []float64
	Laplacian   []float64 // ascending spectrum, exactly Size entries
}

// Extract computes all features of g. The graph is only read.
func Extract(g *core.Graph) (*Features, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := g.Adjacency()
	spectrum, err := LaplacianSpectrum(g)
	if err != nil {
		return nil, fmt.Errorf("topology: Extract: %w", err)
	}

	return &Features{
		Degree:      pad(Degree(adj)),
		Clustering:  pad(Clustering(adj)),
		Betweenness: pad(Betweenness(adj)),
		Laplacian:   spectrum,
	}, nil
}

// Degree returns len(adj[v]) for every v.
func Degree(adj [][]int) []float64 {
	out := make([]float64, len(adj))
	for v, nbs := range adj {
		out[v] = float64(len(nbs))
	}

	return out
}

// Clustering returns the local clustering coefficient of every vertex.
// Neighbor lists must be free of self-loops.
//
// Complexity: O(Σ_v Σ_{u∈N(v)} deg(u)).
func Clustering(adj [][]int) []float64 {
	out := make([]float64, len(adj))
	mark := make([]bool, len(adj))
	for v, nbs := range adj {
		k := len(nbs)
		if k < 2 {
			continue
		}
		for _, u := range nbs {
			mark[u] = true
		}
		var tri int
		for _, u := range nbs {
			for _, w := range adj[u] {
				if w > u && mark[w] {
					tri++
				}
			}
		}
		for _, u := range nbs {
			mark[u] = false
		}
		out[v] = float64(2*tri) / float64(k*(k-1))
	}

	return out
}

// AverageClustering returns the mean local clustering coefficient.
func AverageClustering(adj [][]int) float64 {
	if len(adj) == 0 {
		return 0
	}
	var sum float64
	for _, c := range Clustering(adj) {
		sum += c
	}

	return sum / float64(len(adj))
}

// Betweenness returns Brandes betweenness centrality for every vertex of an
// undirected graph. Every ordered source/target pair contributes, and the
// total is scaled by 1/((n-1)(n-2)) when n > 2.
//
// Complexity: O(n·E).
func Betweenness(adj [][]int) []float64 {
	n := len(adj)
	bc := make([]float64, n)
	delta := make([]float64, n)
	for s := 0; s < n; s++ {
		res := bfs.ShortestPaths(adj, s)
		for i := range delta {
			delta[i] = 0
		}
		for i := len(res.Order) - 1; i >= 0; i-- {
			w := res.Order[i]
			for _, u := range res.Preds[w] {
				// float64(...) keeps the product out of an FMA.
				delta[u] += float64(res.Sigma[u] / res.Sigma[w] * (1 + delta[w]))
			}
			if w != s {
				bc[w] += delta[w]
			}
		}
	}
	if n > 2 {
		scale := 1 / float64((n-1)*(n-2))
		for i := range bc {
			bc[i] *= scale
		}
	}

	return bc
}

// LaplacianSpectrum returns the ascending Laplacian eigenvalues of g, padded
// with zeros or truncated to Size entries.
func LaplacianSpectrum(g *core.Graph) ([]float64, error) {
	l, err := matrix.Laplacian(g)
	if err != nil {
		return nil, err
	}
	spectrum, err := matrix.Spectrum(l, matrix.DefaultEigenTol, matrix.DefaultEigenMaxSweeps)
	if err != nil {
		return nil, err
	}

	return pad(spectrum), nil
}

// pad returns v resized to Size: zero-filled if short, truncated if long.
func pad(v []float64) []float64 {
	out := make([]float64, Size)
	copy(out, v)

	return out
}
