package analysis_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/graphcrypto/analysis"
	"github.com/stretchr/testify/assert"
)

func TestBitDistribution(t *testing.T) {
	st := analysis.BitDistribution([]byte{0xFF, 0x00})
	assert.Equal(t, 16, st.TotalBits)
	assert.Equal(t, 8, st.Ones)
	assert.Equal(t, 0.0, st.Bias)

	st = analysis.BitDistribution([]byte{0xFF})
	assert.Equal(t, 50.0, st.Bias)

	assert.Equal(t, analysis.BitStats{}, analysis.BitDistribution(nil))
}

func TestByteDistribution(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	st := analysis.ByteDistribution(all)
	assert.Equal(t, 256, st.Unique)
	assert.Equal(t, 1.0, st.Expected)
	assert.Equal(t, 0.0, st.ChiSquared)
	assert.Equal(t, 1, st.MinCount)
	assert.Equal(t, 1, st.MaxCount)
	assert.InDelta(t, 8.0, st.Entropy, 1e-12)

	st = analysis.ByteDistribution(bytes.Repeat([]byte{7}, 256))
	assert.Equal(t, 1, st.Unique)
	// 255 empty bins contribute 1 each, the full bin (256-1)².
	assert.Equal(t, 255.0+255.0*255.0, st.ChiSquared)
	assert.Equal(t, 0.0, st.Entropy)
}

func TestRuns(t *testing.T) {
	st := analysis.Runs([]byte{0xF0})
	assert.Equal(t, analysis.RunStats{Total: 2, AvgLength: 4, MaxLength: 4}, st)

	st = analysis.Runs([]byte{0x55, 0x55})
	assert.Equal(t, 16, st.Total)
	assert.Equal(t, 1.0, st.AvgLength)

	st = analysis.Runs([]byte{0x00, 0x00, 0x01})
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 23, st.MaxLength)

	assert.Equal(t, analysis.RunStats{}, analysis.Runs(nil))
}

func TestSerialCorrelation(t *testing.T) {
	ramp := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.InDelta(t, 1.0, analysis.SerialCorrelation(ramp), 1e-12)

	alt := []byte{0, 255, 0, 255, 0, 255}
	assert.InDelta(t, -1.0, analysis.SerialCorrelation(alt), 1e-12)

	assert.Equal(t, 0.0, analysis.SerialCorrelation([]byte{9, 9, 9}))
	assert.Equal(t, 0.0, analysis.SerialCorrelation([]byte{1}))
}

func TestCompressibility(t *testing.T) {
	assert.Less(t, analysis.Compressibility(make([]byte, 4096)), 0.1)
	assert.Equal(t, 0.0, analysis.Compressibility(nil))
}

func TestAnalyzeStream_Empty(t *testing.T) {
	_, err := analysis.AnalyzeStream(nil)
	assert.ErrorIs(t, err, analysis.ErrEmptyStream)
}
