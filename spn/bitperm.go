package spn

import "sort"

// StateBits is the number of bits in a block.
const StateBits = BlockSize * 8

// BitPermutation reorders the 128 state bits. Bits are numbered MSB-first:
// bit k is bit 7-(k%8) of byte k/8. Output bit k takes input bit order[k].
type BitPermutation struct {
	order [StateBits]uint8
}

// NewBitPermutation derives the bit order from the first 128 entries of pi:
// order is the stable ascending sort of indices 0..127 keyed on pi[i].
// Any 256-entry table works; distinct keys are not required.
func NewBitPermutation(pi *[256]byte) *BitPermutation {
	idx := make([]int, StateBits)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return pi[idx[a]] < pi[idx[b]] })

	p := &BitPermutation{}
	for k, i := range idx {
		p.order[k] = uint8(i)
	}

	return p
}

// Order returns a copy of the source index for each output bit.
func (p *BitPermutation) Order() [StateBits]uint8 { return p.order }

// Apply permutes the bits of s in place.
func (p *BitPermutation) Apply(s *[BlockSize]byte) {
	in := *s
	*s = [BlockSize]byte{}
	for k, src := range p.order {
		if getBit(&in, int(src)) {
			setBit(s, k)
		}
	}
}

// Invert undoes Apply in place.
func (p *BitPermutation) Invert(s *[BlockSize]byte) {
	in := *s
	*s = [BlockSize]byte{}
	for k, dst := range p.order {
		if getBit(&in, k) {
			setBit(s, int(dst))
		}
	}
}

func getBit(s *[BlockSize]byte, k int) bool { return s[k>>3]&(0x80>>(k&7)) != 0 }

func setBit(s *[BlockSize]byte, k int) { s[k>>3] |= 0x80 >> (k & 7) }
