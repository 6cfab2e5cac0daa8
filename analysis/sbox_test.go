package analysis_test

import (
	"testing"

	"github.com/katalvlaran/graphcrypto/analysis"
	"github.com/katalvlaran/graphcrypto/permutation"
	"github.com/katalvlaran/graphcrypto/sbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity() permutation.Table {
	var t permutation.Table
	for i := range t {
		t[i] = byte(i)
	}
	return t
}

func TestReferenceBox_Metrics(t *testing.T) {
	s := sbox.Reference
	assert.Equal(t, analysis.AESUniformity, analysis.DifferentialUniformity(s))
	assert.Equal(t, analysis.AESNonlinearity, analysis.Nonlinearity(s))

	score, flips := analysis.SAC(s)
	assert.Equal(t, 0.947265625, score)
	assert.Equal(t, [8]int{132, 132, 116, 144, 116, 124, 116, 128}, flips[0])

	bic, dep := analysis.BIC(s)
	assert.Equal(t, 1.0, bic)
	assert.Equal(t, 1.0, dep[3][3])
	assert.Equal(t, 0.0, dep[0][1])

	assert.InDelta(t, 8.0, analysis.Entropy(s), 1e-12)
	assert.InDelta(t, 0.668521241830065, analysis.Autocorrelation(s), 1e-12)
}

func TestIdentity_Metrics(t *testing.T) {
	s := identity()
	assert.Equal(t, 256, analysis.DifferentialUniformity(s))
	assert.Equal(t, 0, analysis.Nonlinearity(s))

	score, flips := analysis.SAC(s)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, 256, flips[5][5])
	assert.Equal(t, 0, flips[5][4])

	assert.InDelta(t, 0.9666666666666668, analysis.Autocorrelation(s), 1e-12)
}

func TestEntropy_Constant(t *testing.T) {
	var s permutation.Table
	assert.Equal(t, 0.0, analysis.Entropy(s))
}

func TestDDT_Properties(t *testing.T) {
	g := analysis.DDT(sbox.Reference)
	assert.Equal(t, int32(256), g[0][0])
	for dx := 1; dx < analysis.TableSize; dx++ {
		var sum int32
		for dy := 0; dy < analysis.TableSize; dy++ {
			sum += g[dx][dy]
			require.Zero(t, g[dx][dy]%2, "DDT entries come in pairs")
		}
		require.Equal(t, int32(256), sum)
	}
}

func TestTables_WorkerCountIndependent(t *testing.T) {
	s := sbox.Reference
	one := analysis.DDT(s, analysis.WithWorkers(1))
	many := analysis.DDT(s, analysis.WithWorkers(7))
	assert.Equal(t, *one, *many)

	lat1 := analysis.LAT(s, analysis.WithWorkers(0))
	lat2 := analysis.LAT(s, analysis.WithWorkers(300))
	assert.Equal(t, *lat1, *lat2)
	assert.Equal(t, int32(128), lat1[0][0])
}

func TestAffineBox_PreservesReferenceStrength(t *testing.T) {
	var topo [256]byte
	for i := range topo {
		topo[i] = byte(i*31 + 7)
	}
	box, err := sbox.Generate(sbox.ModeAffine, sbox.Params{Topology: &topo, Laplacian: []float64{0, 1, 2, 3}})
	require.NoError(t, err)

	fwd := box.Forward()
	assert.Equal(t, analysis.AESUniformity, analysis.DifferentialUniformity(fwd))
	assert.Equal(t, analysis.AESNonlinearity, analysis.Nonlinearity(fwd))
}

func BenchmarkNonlinearity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		analysis.Nonlinearity(sbox.Reference)
	}
}

func BenchmarkDifferentialUniformity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		analysis.DifferentialUniformity(sbox.Reference)
	}
}
