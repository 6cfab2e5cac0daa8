// Package spn implements the 12-round substitution-permutation network.
//
// The 16-byte state is a 4×4 byte matrix in column-major order (byte
// c*4+r is row r, column c). Each round applies SubBytes, ShiftRows, an
// optional bit-level permutation derived from π, MixColumns (omitted in the
// last round) and a round key:
//
//	state ^= K0
//	r = 1..11:  Sub → Shift → [P] → Mix → ^= Kr
//	r = 12:     Sub → Shift → [P] → ^= K12
//
// Round keys come from a SHA-256 chain over a seed digest (see NewSchedule).
// Cipher implements crypto/cipher.Block; Decrypt inverts every layer.
package spn
