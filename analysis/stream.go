package analysis

import (
	"math"
	"math/bits"

	"github.com/golang/snappy"
)

// ExpectedRunLength is the mean run length of an unbiased bit stream.
const ExpectedRunLength = 2.0

// BitStats summarizes the balance of zeros and ones.
type BitStats struct {
	TotalBits   int
	Zeros       int
	Ones        int
	ZeroPercent float64
	OnePercent  float64
	// Bias is |50 - OnePercent|.
	Bias float64
}

// BitDistribution counts set bits in data. Empty input yields zero stats.
func BitDistribution(data []byte) BitStats {
	st := BitStats{TotalBits: len(data) * 8}
	if st.TotalBits == 0 {
		return st
	}
	for _, b := range data {
		st.Ones += bits.OnesCount8(b)
	}
	st.Zeros = st.TotalBits - st.Ones
	st.OnePercent = float64(st.Ones) / float64(st.TotalBits) * 100
	st.ZeroPercent = float64(st.Zeros) / float64(st.TotalBits) * 100
	st.Bias = math.Abs(50 - st.OnePercent)

	return st
}

// ByteStats summarizes the byte histogram of a stream.
type ByteStats struct {
	// Unique is the number of distinct byte values seen.
	Unique int
	// Expected is len(data)/256.
	Expected float64
	// ChiSquared is Σ (count - Expected)² / Expected over all 256 values.
	ChiSquared float64
	// MinCount and MaxCount range over the values that occur at least once.
	MinCount int
	MaxCount int
	// Entropy is the Shannon entropy of the histogram in bits per byte.
	Entropy float64
}

// ByteDistribution computes the χ² statistic of data against the uniform
// byte distribution. Empty input yields zero stats.
func ByteDistribution(data []byte) ByteStats {
	var st ByteStats
	if len(data) == 0 {
		return st
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	st.Expected = float64(len(data)) / 256
	st.MinCount = len(data)
	for _, c := range counts {
		d := float64(c) - st.Expected
		st.ChiSquared += d * d / st.Expected
		if c == 0 {
			continue
		}
		st.Unique++
		if c < st.MinCount {
			st.MinCount = c
		}
		if c > st.MaxCount {
			st.MaxCount = c
		}
	}
	st.Entropy = shannon(counts[:], len(data))

	return st
}

// RunStats describes maximal runs of equal bits.
type RunStats struct {
	Total     int
	AvgLength float64
	MaxLength int
}

// Runs scans data as one MSB-first bit string. Empty input yields zero stats.
func Runs(data []byte) RunStats {
	var st RunStats
	n := len(data) * 8
	if n == 0 {
		return st
	}
	bit := func(k int) byte { return data[k>>3] >> (7 - k&7) & 1 }

	cur := 1
	for k := 1; k < n; k++ {
		if bit(k) == bit(k-1) {
			cur++
			continue
		}
		st.Total++
		if cur > st.MaxLength {
			st.MaxLength = cur
		}
		cur = 1
	}
	st.Total++
	if cur > st.MaxLength {
		st.MaxLength = cur
	}
	st.AvgLength = float64(n) / float64(st.Total)

	return st
}

// SerialCorrelation is the Pearson correlation between data[i] and data[i+1].
// It returns 0 when fewer than two bytes are given or either series is constant.
func SerialCorrelation(data []byte) float64 {
	n := len(data) - 1
	if n < 1 {
		return 0
	}
	var sx, sy float64
	for i := 0; i < n; i++ {
		sx += float64(data[i])
		sy += float64(data[i+1])
	}
	mx, my := sx/float64(n), sy/float64(n)

	var cov, vx, vy float64
	for i := 0; i < n; i++ {
		dx, dy := float64(data[i])-mx, float64(data[i+1])-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0
	}

	return cov / math.Sqrt(vx*vy)
}

// Compressibility is len(snappy(data)) / len(data). Random streams stay at or
// slightly above 1; structured streams compress well below it. Empty input
// returns 0.
func Compressibility(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	return float64(len(snappy.Encode(nil, data))) / float64(len(data))
}
