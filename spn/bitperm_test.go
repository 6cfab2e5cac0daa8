package spn_test

import (
	"encoding/hex"
	"testing"

	"github.com/katalvlaran/graphcrypto/spn"
	"github.com/stretchr/testify/assert"
)

func TestBitPermutation_Reverse(t *testing.T) {
	p := spn.NewBitPermutation(reversePi())
	order := p.Order()
	assert.Equal(t, uint8(127), order[0])
	assert.Equal(t, uint8(0), order[127])

	var s [spn.BlockSize]byte
	for i := range s {
		s[i] = byte(i)
	}
	p.Apply(&s)
	assert.Equal(t, "f070b030d0509010e060a020c0408000", hex.EncodeToString(s[:]))

	p.Invert(&s)
	for i := range s {
		assert.Equal(t, byte(i), s[i])
	}
}

func TestBitPermutation_TiesAreStable(t *testing.T) {
	var pi [256]byte // all keys equal
	p := spn.NewBitPermutation(&pi)
	order := p.Order()
	for k := range order {
		assert.Equal(t, uint8(k), order[k])
	}

	s := [spn.BlockSize]byte{0xde, 0xad, 0xbe, 0xef}
	want := s
	p.Apply(&s)
	assert.Equal(t, want, s)
}
