package topology_test

import (
	"testing"

	"github.com/katalvlaran/graphcrypto/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 127, 255}, topology.NormalizeToBytes([]float64{-1, 0, 1}))
	assert.Equal(t, []byte{0, 0, 0}, topology.NormalizeToBytes([]float64{3, 3, 3}))
	assert.Len(t, topology.NormalizeToBytes(nil), topology.Size)

	// Truncation, not rounding: 1/3·255 = 85, 2/3·255 = 170.
	assert.Equal(t, []byte{0, 85, 170, 255}, topology.NormalizeToBytes([]float64{0, 1, 2, 3}))
}

func TestFold(t *testing.T) {
	ramp := make([]float64, topology.Size)
	for i := range ramp {
		ramp[i] = float64(i)
	}
	zero := make([]float64, topology.Size)

	v, err := topology.Fold(&topology.Features{Degree: ramp, Clustering: zero, Betweenness: zero, Laplacian: zero})
	require.NoError(t, err)
	for i := range v {
		require.Equal(t, byte(i), v[i])
	}

	// Two identical ramps cancel.
	v, err = topology.Fold(&topology.Features{Degree: ramp, Clustering: ramp, Betweenness: zero, Laplacian: zero})
	require.NoError(t, err)
	assert.Equal(t, topology.Vector{}, v)

	_, err = topology.Fold(&topology.Features{Degree: ramp[:10], Clustering: zero, Betweenness: zero, Laplacian: zero})
	assert.ErrorIs(t, err, topology.ErrFeatureLength)
	_, err = topology.Fold(nil)
	assert.ErrorIs(t, err, topology.ErrFeatureLength)
}
