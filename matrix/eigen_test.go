// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/graphcrypto/builder"
	"github.com/katalvlaran/graphcrypto/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-8

func TestSpectrum_2x2(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)

	vals, err := matrix.Spectrum(m, matrix.DefaultEigenTol, matrix.DefaultEigenMaxSweeps)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, 1.0, vals[0], eps)
	assert.InDelta(t, 3.0, vals[1], eps)
}

// The rotation arithmetic is rounded term by term, so these values are the
// same bit pattern on every GOARCH.
func TestSpectrum_BitExact(t *testing.T) {
	m, _ := matrix.NewDenseFrom([][]float64{
		{4, 1, -2, 2},
		{1, 2, 0, 1},
		{-2, 0, 3, -2},
		{2, 1, -2, -1},
	})
	vals, err := matrix.Spectrum(m, 1e-12, matrix.DefaultEigenMaxSweeps)
	require.NoError(t, err)

	want := []float64{-2.1975169774394248, 1.0843644637732166, 2.2685314064312405, 6.844621107234963}
	for i := range want {
		assert.Equal(t, math.Float64bits(want[i]), math.Float64bits(vals[i]), "λ_%d = %v", i, vals[i])
	}

	var trace float64
	for _, v := range vals {
		trace += v
	}
	assert.InDelta(t, 8.0, trace, eps)
}

func TestSpectrum_ClosedForms(t *testing.T) {
	const n = 12
	cases := []struct {
		name string
		ctor builder.Constructor
		want func() []float64
	}{
		{"Complete", builder.Complete(n), func() []float64 {
			out := make([]float64, n)
			for i := 1; i < n; i++ {
				out[i] = n
			}
			return out
		}},
		{"Cycle", builder.Cycle(n), func() []float64 {
			out := make([]float64, n)
			for k := range out {
				out[k] = 2 - 2*math.Cos(2*math.Pi*float64(k)/n)
			}
			sort.Float64s(out)
			return out
		}},
		{"Path", builder.Path(n), func() []float64 {
			out := make([]float64, n)
			for k := range out {
				out[k] = 2 - 2*math.Cos(math.Pi*float64(k)/n)
			}
			sort.Float64s(out)
			return out
		}},
		{"Star", builder.Star(n), func() []float64 {
			out := make([]float64, n)
			for i := 1; i < n-1; i++ {
				out[i] = 1
			}
			out[n-1] = n
			return out
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(n, nil, tc.ctor)
			require.NoError(t, err)
			l, err := matrix.Laplacian(g)
			require.NoError(t, err)
			got, err := matrix.Spectrum(l, matrix.DefaultEigenTol, matrix.DefaultEigenMaxSweeps)
			require.NoError(t, err)
			want := tc.want()
			require.Len(t, got, n)
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-7, "λ_%d", i)
			}
		})
	}
}

func TestSpectrum_HashGraph(t *testing.T) {
	g, err := builder.BuildGraph(256,
		[]builder.BuilderOption{builder.WithSeed("test_seed_123")}, builder.HashChain())
	require.NoError(t, err)
	l, err := matrix.Laplacian(g)
	require.NoError(t, err)
	spec, err := matrix.Spectrum(l, matrix.DefaultEigenTol, matrix.DefaultEigenMaxSweeps)
	require.NoError(t, err)
	require.Len(t, spec, 256)

	// Sum of eigenvalues equals trace(L) = 2E.
	var sum float64
	for i, v := range spec {
		sum += v
		if i > 0 {
			require.LessOrEqual(t, spec[i-1], v)
		}
	}
	assert.InDelta(t, 2*1495.0, sum, 1e-6)
	assert.InDelta(t, 0.0, spec[0], 1e-7)
}

func TestSpectrum_Errors(t *testing.T) {
	_, err := matrix.Spectrum(nil, 1e-9, 10)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.Spectrum(rect, 1e-9, 10)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	asym, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {0, 1}})
	_, err = matrix.Spectrum(asym, 1e-9, 10)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	m, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {2, 5, 4}, {3, 4, 9}})
	_, err = matrix.Spectrum(m, 1e-15, 0)
	assert.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)

	_, err = matrix.Laplacian(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}
