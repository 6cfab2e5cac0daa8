package topology

import (
	"fmt"

	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/katalvlaran/graphcrypto/core"
)

// Vector is the 256-byte topology vector.
type Vector [Size]byte

// NormalizeToBytes min-max scales v to [0,255] with truncation:
// uint8((x-min)/(max-min)*255). A constant vector maps to zeros and an empty
// one to Size zeros.
func NormalizeToBytes(v []float64) []byte {
	if len(v) == 0 {
		return make([]byte, Size)
	}
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	out := make([]byte, len(v))
	if hi == lo {
		return out
	}
	span := hi - lo
	for i, x := range v {
		out[i] = uint8((x - lo) / span * 255)
	}

	return out
}

// Fold XORs the normalized feature vectors into a Vector.
// Returns ErrFeatureLength if any vector is not exactly Size long.
func Fold(f *Features) (Vector, error) {
	if f == nil {
		return Vector{}, fmt.Errorf("topology: Fold: nil features: %w", ErrFeatureLength)
	}
	var out Vector
	names := [...]string{"degree", "clustering", "betweenness", "laplacian"}
	for k, vec := range [...][]float64{f.Degree, f.Clustering, f.Betweenness, f.Laplacian} {
		if len(vec) != Size {
			return Vector{}, fmt.Errorf("topology: Fold: %s has %d entries: %w", names[k], len(vec), ErrFeatureLength)
		}
		for i, b := range NormalizeToBytes(vec) {
			out[i] ^= b
		}
	}

	return out, nil
}

// Result bundles everything derived from one seed graph.
type Result struct {
	Graph    *core.Graph
	Features *Features
	Vector   Vector
}

// Analyze extracts the features of g and folds them.
func Analyze(g *core.Graph) (*Result, error) {
	f, err := Extract(g)
	if err != nil {
		return nil, err
	}
	v, err := Fold(f)
	if err != nil {
		return nil, err
	}

	return &Result{Graph: g, Features: f, Vector: v}, nil
}

// FromSeed builds the hash-chain graph for seed and analyzes it. opts are
// applied after the seed, so WithRounds and WithHash select the construction.
func FromSeed(seed string, opts ...builder.BuilderOption) (*Result, error) {
	bopts := append([]builder.BuilderOption{builder.WithSeed(seed)}, opts...)
	g, err := builder.BuildGraph(Size, bopts, builder.HashChain())
	if err != nil {
		return nil, fmt.Errorf("topology: FromSeed: %w", err)
	}

	return Analyze(g)
}
