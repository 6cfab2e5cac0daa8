package analysis

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"
)

// AvalancheStats reports how many ciphertext bits change per flipped plaintext bit.
type AvalancheStats struct {
	Samples    int
	BlockBits  int
	AvgBitDiff float64
	MinBitDiff int
	MaxBitDiff int
	// Percentage is AvgBitDiff relative to BlockBits; 50 is ideal.
	Percentage float64
}

// ErrBadSamples is returned when a non-positive sample count is requested.
var ErrBadSamples = errors.New("analysis: samples must be positive")

// CipherAvalanche encrypts counter blocks i = 0..samples-1 (big-endian in the
// low 8 bytes) and the same block with bit i mod width flipped, counting
// differing ciphertext bits. Bit 0 is the least significant bit of the last
// byte, so sample 0 compares counters 0 and 1.
func CipherAvalanche(block cipher.Block, samples int) (AvalancheStats, error) {
	if samples < 1 {
		return AvalancheStats{}, ErrBadSamples
	}
	size := block.BlockSize()
	if size < 8 {
		return AvalancheStats{}, errors.Errorf("analysis: block size %d too small", size)
	}
	st := AvalancheStats{Samples: samples, BlockBits: size * 8, MinBitDiff: size * 8}

	a := make([]byte, size)
	b := make([]byte, size)
	ca := make([]byte, size)
	cb := make([]byte, size)
	total := 0
	for i := 0; i < samples; i++ {
		for k := range a {
			a[k] = 0
		}
		binary.BigEndian.PutUint64(a[size-8:], uint64(i))
		copy(b, a)
		bit := i % st.BlockBits
		b[size-1-bit/8] ^= 1 << (bit % 8)

		block.Encrypt(ca, a)
		block.Encrypt(cb, b)
		d := 0
		for k := range ca {
			d += bits.OnesCount8(ca[k] ^ cb[k])
		}
		total += d
		if d < st.MinBitDiff {
			st.MinBitDiff = d
		}
		if d > st.MaxBitDiff {
			st.MaxBitDiff = d
		}
	}
	st.AvgBitDiff = float64(total) / float64(samples)
	st.Percentage = st.AvgBitDiff / float64(st.BlockBits) * 100

	return st, nil
}
