package analysis

import (
	"github.com/katalvlaran/graphcrypto/permutation"
	"github.com/pkg/errors"
)

// ErrEmptyStream is returned by AnalyzeStream for zero-length input.
var ErrEmptyStream = errors.New("analysis: empty stream")

// SboxReport collects every S-box metric.
type SboxReport struct {
	Label           string
	Uniformity      int
	Nonlinearity    int
	SAC             float64
	SACFlips        [8][8]int
	BIC             float64
	BICMatrix       [8][8]float64
	Entropy         float64
	Autocorrelation float64
}

// AnalyzeSbox computes all S-box metrics for s.
func AnalyzeSbox(label string, s permutation.Table, opts ...Option) SboxReport {
	r := SboxReport{
		Label:           label,
		Uniformity:      DifferentialUniformity(s, opts...),
		Nonlinearity:    Nonlinearity(s, opts...),
		Entropy:         Entropy(s),
		Autocorrelation: Autocorrelation(s),
	}
	r.SAC, r.SACFlips = SAC(s)
	r.BIC, r.BICMatrix = BIC(s)

	return r
}

// StreamReport collects the randomness statistics of a byte stream.
type StreamReport struct {
	Length            int
	Bits              BitStats
	Bytes             ByteStats
	Runs              RunStats
	SerialCorrelation float64
	Compressibility   float64
}

// AnalyzeStream computes all stream metrics for data.
func AnalyzeStream(data []byte) (StreamReport, error) {
	if len(data) == 0 {
		return StreamReport{}, ErrEmptyStream
	}

	return StreamReport{
		Length:            len(data),
		Bits:              BitDistribution(data),
		Bytes:             ByteDistribution(data),
		Runs:              Runs(data),
		SerialCorrelation: SerialCorrelation(data),
		Compressibility:   Compressibility(data),
	}, nil
}

// Score grades a system out of 100:
//
//	25  differential uniformity equals the AES value
//	25  nonlinearity equals the AES value
//	20  bit bias below 1%
//	15  |serial correlation| below 0.05
//	15  average run length below 3
func Score(sb SboxReport, st StreamReport) int {
	score := 0
	if sb.Uniformity == AESUniformity {
		score += 25
	}
	if sb.Nonlinearity == AESNonlinearity {
		score += 25
	}
	if st.Bits.Bias < 1 {
		score += 20
	}
	if st.SerialCorrelation < 0.05 && st.SerialCorrelation > -0.05 {
		score += 15
	}
	if st.Runs.AvgLength < 3 {
		score += 15
	}

	return score
}

// Grade names the band a score falls in.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "weak"
	}
}

// Comparison is one metric of two S-box reports side by side.
type Comparison struct {
	Metric      string
	A, B        float64
	LowerBetter bool
	// Winner is the label of the better report; B wins ties.
	Winner string
}

// Compare lines up autocorrelation, entropy, SAC, BIC and differential
// uniformity of a and b.
func Compare(a, b SboxReport) []Comparison {
	rows := []Comparison{
		{Metric: "autocorrelation", A: a.Autocorrelation, B: b.Autocorrelation, LowerBetter: true},
		{Metric: "entropy", A: a.Entropy, B: b.Entropy},
		{Metric: "sac", A: a.SAC, B: b.SAC},
		{Metric: "bic", A: a.BIC, B: b.BIC},
		{Metric: "uniformity", A: float64(a.Uniformity), B: float64(b.Uniformity), LowerBetter: true},
	}
	for i := range rows {
		r := &rows[i]
		aWins := r.A > r.B
		if r.LowerBetter {
			aWins = r.A < r.B
		}
		r.Winner = b.Label
		if aWins {
			r.Winner = a.Label
		}
	}

	return rows
}
