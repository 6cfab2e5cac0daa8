package gf256

// Poly is the full reducing polynomial x⁸+x⁴+x³+x+1.
const Poly = 0x11B

// reduce is Poly without the x⁸ term; it is XORed in whenever a shift
// carries out of the top bit.
const reduce = 0x1B

// Add returns a+b in GF(2⁸), i.e. a XOR b.
func Add(a, b byte) byte { return a ^ b }

// Mul returns a·b in GF(2⁸).
//
// Complexity: O(8).
func Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= reduce
		}
		b >>= 1
	}

	return p
}

// Pow returns a^n in GF(2⁸) by repeated squaring. Pow(a, 0) == 1 for every a,
// including zero.
func Pow(a byte, n uint) byte {
	result := byte(1)
	for n > 0 {
		if n&1 != 0 {
			result = Mul(result, a)
		}
		a = Mul(a, a)
		n >>= 1
	}

	return result
}

// Inv returns the multiplicative inverse of a (a^254). Zero has no inverse
// and maps to zero.
func Inv(a byte) byte {
	if a == 0 {
		return 0
	}

	return Pow(a, 254)
}
