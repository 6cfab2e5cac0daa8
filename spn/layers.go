package spn

import "github.com/katalvlaran/graphcrypto/gf256"

type state = [BlockSize]byte

func subBytes(s *state, box *[256]byte) {
	for i, b := range s {
		s[i] = box[b]
	}
}

// shiftRows rotates row r left by r positions.
func shiftRows(s *state) {
	in := *s
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c*4+r] = in[((c+r)%4)*4+r]
		}
	}
}

func invShiftRows(s *state) {
	in := *s
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[((c+r)%4)*4+r] = in[c*4+r]
		}
	}
}

// mixColumns multiplies each column by the AES circulant (02 03 01 01).
func mixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4] = gf256.Mul02[a0] ^ gf256.Mul03[a1] ^ a2 ^ a3
		s[c*4+1] = a0 ^ gf256.Mul02[a1] ^ gf256.Mul03[a2] ^ a3
		s[c*4+2] = a0 ^ a1 ^ gf256.Mul02[a2] ^ gf256.Mul03[a3]
		s[c*4+3] = gf256.Mul03[a0] ^ a1 ^ a2 ^ gf256.Mul02[a3]
	}
}

// invMixColumns multiplies each column by (0E 0B 0D 09).
func invMixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		s[c*4] = gf256.Mul0E[a0] ^ gf256.Mul0B[a1] ^ gf256.Mul0D[a2] ^ gf256.Mul09[a3]
		s[c*4+1] = gf256.Mul09[a0] ^ gf256.Mul0E[a1] ^ gf256.Mul0B[a2] ^ gf256.Mul0D[a3]
		s[c*4+2] = gf256.Mul0D[a0] ^ gf256.Mul09[a1] ^ gf256.Mul0E[a2] ^ gf256.Mul0B[a3]
		s[c*4+3] = gf256.Mul0B[a0] ^ gf256.Mul0D[a1] ^ gf256.Mul09[a2] ^ gf256.Mul0E[a3]
	}
}

func addRoundKey(s *state, k *[BlockSize]byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}
