package sbox

import (
	"crypto/sha256"
	"math"
	"math/bits"
)

// AffineMatrix is the AES affine matrix over GF(2), one byte per row:
// bit j of row i is the coefficient of input bit j in output bit i.
// It is invertible, so x -> A·x ⊕ b is a bijection for every b.
var AffineMatrix = [8]byte{0xF1, 0xE3, 0xC7, 0x8F, 0x1F, 0x3E, 0x7C, 0xF8}

// laplacianTerms is how many leading eigenvalues feed the affine constant.
const laplacianTerms = 8

// ApplyAffine returns A·x ⊕ b.
func ApplyAffine(x, b byte) byte {
	var y byte
	for i, row := range AffineMatrix {
		y |= byte(bits.OnesCount8(row&x)&1) << i
	}

	return y ^ b
}

// AffineConstant derives b from the topology vector and Laplacian spectrum:
//
//	b = SHA-256(topo)[0] ⊕ (⊕_{i<8} uint8(|λ_i| / max_j |λ_j| · 255))
//
// The eigenvalue term is skipped when fewer than 8 eigenvalues are supplied
// and contributes zero when all 8 magnitudes are zero.
func AffineConstant(topo *[256]byte, laplacian []float64) byte {
	digest := sha256.Sum256(topo[:])
	b := digest[0]
	if len(laplacian) < laplacianTerms {
		return b
	}

	var mags [laplacianTerms]float64
	var hi float64
	for i := range mags {
		mags[i] = math.Abs(laplacian[i])
		if mags[i] > hi {
			hi = mags[i]
		}
	}
	if hi == 0 {
		return b
	}
	var fold byte
	for _, m := range mags {
		fold ^= uint8(m / hi * 255)
	}

	return b ^ fold
}
