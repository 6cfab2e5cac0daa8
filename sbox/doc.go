// Package sbox generates the bijective 256-entry substitution table used by
// the SPN cipher, together with its inverse.
//
// All modes start from the AES S-box:
//
//	ModeAffine     S'[x] = A·S[x] ⊕ b with the AES affine matrix A and a
//	               seed-derived constant b. Differential uniformity (4) and
//	               nonlinearity (112) are preserved. This is the default.
//	ModePure       the AES S-box itself, not seed-specific.
//	ModeConjugate  S'[x] = π[S[π⁻¹[x]]]. Seed-unique, but differential
//	               uniformity is not preserved since π does not commute with XOR.
//
// A fourth "HYBRID" construction (S-box XOR a topology mask) is not
// bijective in general; ParseMode recognises the name only to reject it.
//
// Every generated table is verified to be a bijection and the inverse is
// checked entry by entry; a failure is reported as ErrNotBijective and
// signals a construction defect.
package sbox
