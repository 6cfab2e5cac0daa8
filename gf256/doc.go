// Package gf256 implements arithmetic in the finite field GF(2⁸) under the
// AES reducing polynomial x⁸+x⁴+x³+x+1 (0x11B).
//
// Addition is XOR. Multiplication is the carry-less shift-and-reduce loop over
// eight iterations. Pow uses square-and-multiply, and Inv(a) = a^254 with
// Inv(0) defined as 0 so that every function stays total.
//
// The package also exposes precomputed multiply-by-constant tables for the
// six scalars used by the MixColumns diffusion step and its inverse:
//
//	Mul02, Mul03          forward MixColumns
//	Mul09, Mul0B, Mul0D, Mul0E  inverse MixColumns
//
// Tables are built once at package initialisation and must not be modified.
package gf256
