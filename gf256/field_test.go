package gf256_test

import (
	"testing"

	"github.com/katalvlaran/graphcrypto/gf256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_KnownVectors(t *testing.T) {
	// FIPS-197 §4.2 worked example.
	assert.Equal(t, byte(0xC1), gf256.Mul(0x57, 0x83))
	assert.Equal(t, byte(0xFE), gf256.Mul(0x57, 0x13))
	assert.Equal(t, byte(0xAE), gf256.Mul(0x57, 0x02))
	assert.Equal(t, byte(0x00), gf256.Mul(0x00, 0xFF))
	assert.Equal(t, byte(0x2A), gf256.Mul(0x2A, 0x01))
}

func TestMul_CommutativeAndDistributive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b += 7 {
			x, y := byte(a), byte(b)
			require.Equal(t, gf256.Mul(x, y), gf256.Mul(y, x))
			for _, c := range []byte{0x01, 0x53, 0xCA} {
				lhs := gf256.Mul(x, gf256.Add(y, c))
				rhs := gf256.Add(gf256.Mul(x, y), gf256.Mul(x, c))
				require.Equal(t, rhs, lhs, "a=%#x b=%#x c=%#x", a, b, c)
			}
		}
	}
}

func TestInv(t *testing.T) {
	assert.Equal(t, byte(0), gf256.Inv(0))
	assert.Equal(t, byte(0xCA), gf256.Inv(0x53))
	assert.Equal(t, byte(0x01), gf256.Inv(0x01))
	for a := 1; a < 256; a++ {
		require.Equal(t, byte(1), gf256.Mul(byte(a), gf256.Inv(byte(a))), "a=%#x", a)
	}
}

func TestPow(t *testing.T) {
	assert.Equal(t, byte(1), gf256.Pow(0, 0))
	assert.Equal(t, byte(0), gf256.Pow(0, 5))
	// 0x03 generates the multiplicative group of order 255.
	assert.Equal(t, byte(1), gf256.Pow(0x03, 255))
	seen := make(map[byte]bool)
	for n := uint(0); n < 255; n++ {
		seen[gf256.Pow(0x03, n)] = true
	}
	assert.Len(t, seen, 255)
}

func TestTables(t *testing.T) {
	for x := 0; x < 256; x++ {
		b := byte(x)
		require.Equal(t, gf256.Mul(0x02, b), gf256.Mul02[x])
		require.Equal(t, gf256.Mul(0x03, b), gf256.Mul03[x])
		require.Equal(t, gf256.Mul(0x09, b), gf256.Mul09[x])
		require.Equal(t, gf256.Mul(0x0B, b), gf256.Mul0B[x])
		require.Equal(t, gf256.Mul(0x0D, b), gf256.Mul0D[x])
		require.Equal(t, gf256.Mul(0x0E, b), gf256.Mul0E[x])
	}
	assert.Equal(t, gf256.Mul03[0x57], gf256.Mul02[0x57]^0x57)
}

func BenchmarkMul(b *testing.B) {
	var acc byte
	for i := 0; i < b.N; i++ {
		acc ^= gf256.Mul(byte(i), byte(i>>8))
	}
	_ = acc
}
